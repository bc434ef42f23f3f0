package order

import "time"

// EvidencePhoto is one seller-uploaded photo documenting the product's condition
// before handover to logistics.
type EvidencePhoto struct {
	url        string
	uploadedAt time.Time
}

// NewEvidencePhoto creates an evidence photo record.
func NewEvidencePhoto(url string, uploadedAt time.Time) EvidencePhoto {
	return EvidencePhoto{url: url, uploadedAt: uploadedAt}
}

// URL returns the photo location.
func (p EvidencePhoto) URL() string { return p.url }

// UploadedAt returns when the photo was attached.
func (p EvidencePhoto) UploadedAt() time.Time { return p.uploadedAt }

// Condition is the product-condition documentation of an order: seller-submitted
// photo and video evidence plus the logistics receipt confirmation. Logistics
// confirmation is a prerequisite for the PickedUp milestone.
type Condition struct {
	sellerPhotos         []EvidencePhoto
	sellerVideoURL       string
	logisticsConfirmedAt *time.Time
	logisticsNotes       string
}

// RestoreCondition rebuilds a condition record from persistence.
func RestoreCondition(
	sellerPhotos []EvidencePhoto,
	sellerVideoURL string,
	logisticsConfirmedAt *time.Time,
	logisticsNotes string,
) Condition {
	return Condition{
		sellerPhotos:         sellerPhotos,
		sellerVideoURL:       sellerVideoURL,
		logisticsConfirmedAt: logisticsConfirmedAt,
		logisticsNotes:       logisticsNotes,
	}
}

// SellerPhotos returns a copy of the attached evidence photos.
func (c Condition) SellerPhotos() []EvidencePhoto {
	out := make([]EvidencePhoto, len(c.sellerPhotos))
	copy(out, c.sellerPhotos)
	return out
}

// SellerVideoURL returns the optional packing video reference.
func (c Condition) SellerVideoURL() string {
	return c.sellerVideoURL
}

// LogisticsConfirmedAt returns when logistics confirmed the package condition,
// or nil if it has not done so yet.
func (c Condition) LogisticsConfirmedAt() *time.Time {
	return c.logisticsConfirmedAt
}

// LogisticsNotes returns the notes left by logistics at receipt confirmation.
func (c Condition) LogisticsNotes() string {
	return c.logisticsNotes
}

// IsConfirmedByLogistics reports whether logistics confirmed the package condition.
func (c Condition) IsConfirmedByLogistics() bool {
	return c.logisticsConfirmedAt != nil
}
