package repositories

type Repos struct {
	User        UserRepo
	Gig         GigRepo
	Transaction TransactionRepo
	Review      ReviewRepo
	Chat        ChatRepo
	Audit       AuditRepo
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		Gig:         &DBGigRepo{},
		Transaction: &DBTransactionRepo{},
		Review:      &DBReviewRepo{},
		Chat:        &DBChatRepo{},
		Audit:       &DBAuditRepo{},
	}
}
