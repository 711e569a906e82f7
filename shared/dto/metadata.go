package dto

import (
	"roomops/shared/constant"
	"roomops/shared/model"
	"roomops/shared/timezone"
	"time"
)

// Metadata is the audit block embedded in read responses.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  formatStamp(source.CreatedAt),
		ModifiedAt: formatStamp(source.ModifiedAt),
		CreatedBy:  source.CreatedBy,
		ModifiedBy: source.ModifiedBy,
	}
}

func formatStamp(stamp time.Time) string {
	if stamp.IsZero() {
		return constant.Empty
	}

	return timezone.Format(stamp, constant.DateFormat)
}
