package rates

import "time"

type Relationship struct {
	PccID             string     `json:"pccId"`
	CandidateID       string     `json:"candidateId"`
	ClientID          string     `json:"clientId"`
	Status            int        `json:"status"`
	PlacementDate     *time.Time `json:"placementDate,omitempty"`
	ContractStartDate *time.Time `json:"contractStartDate,omitempty"`
	ContractEndDate   *time.Time `json:"contractEndDate,omitempty"`
}

type Rate struct {
	ID                int        `json:"id"`
	PccID             string     `json:"pccId"`
	RateTypeID        int        `json:"rateTypeId"`
	RateTypeName      string     `json:"rateTypeName"`
	RateFrequencyID   int        `json:"rateFrequencyId"`
	RateFrequencyName string     `json:"rateFrequencyName"`
	PayRate           float64    `json:"payRate"`
	BillRate          float64    `json:"billRate"`
	DateApplicable    *time.Time `json:"dateApplicable,omitempty"`
	DateEnd           *time.Time `json:"dateEnd,omitempty"`
}
