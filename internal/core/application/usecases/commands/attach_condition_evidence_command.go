package commands

import (
	"errors"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/guard"
)

var (
	ErrAttachConditionEvidenceCommandIsNotConstructed = errors.New(
		"AttachConditionEvidenceCommand must be created via NewAttachConditionEvidenceCommand constructor",
	)
	ErrEvidenceIsRequired = errors.New("at least one photo or a video is required")
)

// AttachConditionEvidenceCommand represents a seller documenting the product's
// condition before handover to logistics: photo URLs and an optional packing video.
type AttachConditionEvidenceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	photoURLs []string
	videoURL  string

	guard guard.ConstructorGuard
}

// NewAttachConditionEvidenceCommand creates a command to attach seller evidence.
// At least one photo URL or a video URL must be provided.
func NewAttachConditionEvidenceCommand(
	orderID kernel.UUID,
	photoURLs []string,
	videoURL string,
) (AttachConditionEvidenceCommand, error) {
	cmd := AttachConditionEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvidence(photoURLs, videoURL),
	); err != nil {
		return AttachConditionEvidenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachConditionEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachConditionEvidenceCommandIsNotConstructed)
}

// OrderID returns the identifier of the documented order.
func (c AttachConditionEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PhotoURLs returns the evidence photo locations.
func (c AttachConditionEvidenceCommand) PhotoURLs() []string {
	return c.photoURLs
}

// VideoURL returns the optional packing video location.
func (c AttachConditionEvidenceCommand) VideoURL() string {
	return c.videoURL
}

func (c *AttachConditionEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachConditionEvidenceCommand) setEvidence(photoURLs []string, videoURL string) error {
	if len(photoURLs) == 0 && videoURL == "" {
		return ErrEvidenceIsRequired
	}

	c.photoURLs = photoURLs
	c.videoURL = videoURL
	return nil
}
