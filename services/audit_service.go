package services

import (
	"encoding/json"

	"github.com/campusgig/platform-go/models"
	"github.com/campusgig/platform-go/repositories"
	"github.com/sirupsen/logrus"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

// Record writes an audit row. Audit failures are logged and swallowed;
// auditing never blocks the operation being audited.
func (s *AuditService) Record(userID uint, action, resourceType, resourceID string, before, after interface{}, description string) {
	var oldData, newData []byte
	if before != nil {
		oldData, _ = json.Marshal(before)
	}
	if after != nil {
		newData, _ = json.Marshal(after)
	}

	audit := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		Description:  description,
	}
	if err := s.Repos.Audit.CreateAuditLog(audit); err != nil {
		logrus.WithField("action", action).WithError(err).Warn("audit write failed")
	}
}

func (s *AuditService) Query(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}
