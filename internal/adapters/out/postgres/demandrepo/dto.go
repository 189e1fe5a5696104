// Package demandrepo provides data transfer objects and mapping
// functions for demand persistence. A demand row owns its manifest as
// child rows in the demand_packages table.
package demandrepo

import (
	"time"

	"freight/internal/core/domain/model/demand"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DemandDTO represents the database structure for persisting demand
// aggregates.
type DemandDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ShipperID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	AnnouncementID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status         int                `gorm:"not null;index"`
	CreatedAt      time.Time          `gorm:"not null;index"`
	DeliveredAt    *time.Time         `gorm:""`
	Packages       []DemandPackageDTO `gorm:"foreignKey:DemandID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for demand entities.
func (DemandDTO) TableName() string {
	return "demands"
}

// DemandPackageDTO represents one manifest item. Packages are value
// objects with no identity of their own; the row id exists only for
// storage and stable ordering.
type DemandPackageDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	DemandID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Length      float64   `gorm:"not null"`
	Width       float64   `gorm:"not null"`
	Height      float64   `gorm:"not null"`
	Weight      float64   `gorm:"not null"`
	PackageType string    `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for manifest items.
func (DemandPackageDTO) TableName() string {
	return "demand_packages"
}

// fromDomain converts a demand aggregate to its database representation,
// manifest included.
func fromDomain(aggregate *demand.Demand) DemandDTO {
	demandID := aggregate.ID().Bytes()

	packages := make([]DemandPackageDTO, 0, len(aggregate.Packages()))
	for _, p := range aggregate.Packages() {
		dims := p.Dimensions()
		packages = append(packages, DemandPackageDTO{
			DemandID:    demandID,
			Title:       p.Title(),
			Length:      dims.Length(),
			Width:       dims.Width(),
			Height:      dims.Height(),
			Weight:      p.Weight(),
			PackageType: p.PackageType(),
		})
	}

	return DemandDTO{
		ID:             demandID,
		ShipperID:      aggregate.ShipperID().Bytes(),
		AnnouncementID: aggregate.AnnouncementID().Bytes(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		Packages:       packages,
	}
}

// toDomain converts a database DTO back into a demand aggregate. Each
// manifest row passes through NewPackage so persisted data is held to
// the same rules as fresh input.
func toDomain(dto DemandDTO) (*demand.Demand, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	announcementID, err := kernel.UUIDFromBytes(dto.AnnouncementID[:])
	if err != nil {
		return nil, err
	}

	packages := make([]demand.Package, 0, len(dto.Packages))
	for _, pDto := range dto.Packages {
		dims, dimsErr := kernel.NewDimensions(pDto.Length, pDto.Width, pDto.Height)
		if dimsErr != nil {
			return nil, dimsErr
		}

		p, pkgErr := demand.NewPackage(pDto.Title, dims, pDto.Weight, pDto.PackageType)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, p)
	}

	return demand.RestoreDemand(
		id,
		shipperID,
		announcementID,
		packages,
		demand.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
