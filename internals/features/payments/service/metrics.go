package service

import "github.com/prometheus/client_golang/prometheus"

var paymentTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "learnsmate_payment_transitions_total",
	Help: "Payments entering each status.",
}, []string{"status"})

func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(paymentTransitions)
}
