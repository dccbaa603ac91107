package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GigsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusgig_gigs_created_total",
		Help: "Number of gigs posted.",
	})

	ApplicantDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusgig_applicant_decisions_total",
		Help: "Applicant decisions by outcome.",
	}, []string{"decision"})

	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusgig_payments_confirmed_total",
		Help: "Payment confirmations that created a transaction.",
	})

	PaymentNoops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusgig_payment_noop_confirmations_total",
		Help: "Duplicate or out-of-state payment confirmations ignored.",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusgig_notification_failures_total",
		Help: "Chat notification writes that failed and were swallowed.",
	})

	ReviewsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusgig_reviews_submitted_total",
		Help: "Reviews accepted into the rating aggregate.",
	})
)
