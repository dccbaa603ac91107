package dto

type CreateGigDTO struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	RequiredSkills  []string `json:"required_skills" binding:"required,min=1"`
	Budget          string   `json:"budget" binding:"required" example:"10000.00"`
	Currency        string   `json:"currency" binding:"required,len=3" example:"INR"`
	Deadline        string   `json:"deadline" binding:"required" example:"2026-10-01T00:00:00Z"`
	NumberOfReports int      `json:"number_of_reports" binding:"omitempty,min=0"`
}

type UpdateGigDTO struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	RequiredSkills  *[]string `json:"required_skills,omitempty"`
	Budget          *string   `json:"budget,omitempty"`
	Deadline        *string   `json:"deadline,omitempty"`
	NumberOfReports *int      `json:"number_of_reports,omitempty"`
}

type ApplyDTO struct {
	Message string `json:"message"`
}

type DecisionDTO struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

type CreateReportDTO struct {
	Note string `form:"note"`
	Seq  int    `form:"seq" binding:"required,min=1"`
}
