package loan

import (
	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/model"
)

const (
	// DefaultPeriodDays is both the lending period and the overdue threshold
	DefaultPeriodDays = model.DefaultLoanPeriodDays
	// DefaultMaxActiveLoans is the number of open loans a member may hold
	DefaultMaxActiveLoans = 3
)

// Policy holds the borrowing rules applied by LoanService
type Policy struct {
	PeriodDays     int
	MaxActiveLoans int
}

func DefaultPolicy() Policy {
	return Policy{
		PeriodDays:     DefaultPeriodDays,
		MaxActiveLoans: DefaultMaxActiveLoans,
	}
}

// PolicyFrom reads the policy from configuration, keeping defaults for unset values
func PolicyFrom(cfg config.LoanConfig) Policy {
	policy := DefaultPolicy()
	if cfg.PeriodDays > 0 {
		policy.PeriodDays = cfg.PeriodDays
	}
	if cfg.MaxActiveLoans > 0 {
		policy.MaxActiveLoans = cfg.MaxActiveLoans
	}
	return policy
}
