package entities

import (
	"github.com/shopspring/decimal"
)

// Procedure is a diagnosis-related group (DRG) billing category
type Procedure struct {
	Code        int    `json:"code" db:"code"`
	Description string `json:"description" db:"description"`
}

// PriceObservation is one provider's reported averages for one DRG
type PriceObservation struct {
	ProviderKey             int64               `json:"-" db:"provider_id"`
	DRGCode                 int                 `json:"drg_code" db:"drg_code"`
	TotalDischarges         *int                `json:"total_discharges,omitempty" db:"total_discharges"`
	AverageCoveredCharges   decimal.NullDecimal `json:"average_covered_charges" db:"average_covered_charges"`
	AverageTotalPayments    decimal.NullDecimal `json:"average_total_payments" db:"average_total_payments"`
	AverageMedicarePayments decimal.NullDecimal `json:"average_medicare_payments" db:"average_medicare_payments"`
}
