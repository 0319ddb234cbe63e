package domain

import "time"

// Parameter is an opaque key-value configuration row, independent of the
// ledger graph. payment_account is the canonical example key.
type Parameter struct {
	ParameterID    int64     `json:"parameterId"`
	ParameterName  string    `json:"parameterName"`
	ParameterValue string    `json:"parameterValue"`
	ActiveStatus   bool      `json:"activeStatus"`
	DateAdded      time.Time `json:"dateAdded"`
	DateUpdated    time.Time `json:"dateUpdated"`
}

func (p *Parameter) Validate() error {
	if err := requireLength("parameterName", p.ParameterName, 1, 50); err != nil {
		return err
	}
	return requireLength("parameterValue", p.ParameterValue, 1, 50)
}
