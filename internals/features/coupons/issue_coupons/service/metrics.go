package service

import "github.com/prometheus/client_golang/prometheus"

var (
	couponsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "learnsmate_coupons_issued_total",
		Help: "Coupon issuance records created.",
	})
	couponsUsed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "learnsmate_coupons_used_total",
		Help: "Issued coupons marked as used.",
	})
)

func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{couponsIssued, couponsUsed} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
