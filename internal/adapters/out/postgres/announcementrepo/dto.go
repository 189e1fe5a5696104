// Package announcementrepo provides data transfer objects and mapping
// functions for announcement persistence. It implements the repository
// pattern for the announcement aggregate, including the version-guarded
// write the capacity ledger relies on.
package announcementrepo

import (
	"time"

	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AnnouncementDTO represents the database structure for persisting
// announcement aggregates. The reserved_capacity and version columns
// together form the persisted ledger state; available capacity is never
// stored.
type AnnouncementDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartPoint       string     `gorm:"type:varchar(255);not null"`
	Waypoints        []string   `gorm:"serializer:json;type:jsonb"`
	Destination      string     `gorm:"type:varchar(255);not null"`
	MaxLength        float64    `gorm:"not null"`
	MaxWidth         float64    `gorm:"not null"`
	MaxHeight        float64    `gorm:"not null"`
	PackageTypes     []string   `gorm:"serializer:json;type:jsonb"`
	DeclaredCapacity float64    `gorm:"not null"`
	ReservedCapacity float64    `gorm:"not null"`
	StartDate        time.Time  `gorm:"not null;index"`
	EndDate          *time.Time `gorm:""`
	Status           int        `gorm:"not null;index"`
	CreatedAt        time.Time  `gorm:"not null;index"`
	Version          int        `gorm:"not null"`
}

// TableName specifies the database table name for announcement entities.
func (AnnouncementDTO) TableName() string {
	return "announcements"
}

// fromDomain converts an announcement aggregate to its database
// representation.
func fromDomain(aggregate *announcement.Announcement) AnnouncementDTO {
	route := aggregate.Route()
	maxDims := aggregate.MaxDimensions()

	return AnnouncementDTO{
		ID:               aggregate.ID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		StartPoint:       route.StartPoint(),
		Waypoints:        route.Waypoints(),
		Destination:      route.Destination(),
		MaxLength:        maxDims.Length(),
		MaxWidth:         maxDims.Width(),
		MaxHeight:        maxDims.Height(),
		PackageTypes:     aggregate.PackageTypes(),
		DeclaredCapacity: aggregate.DeclaredCapacity(),
		ReservedCapacity: aggregate.ReservedCapacity(),
		StartDate:        aggregate.StartDate(),
		EndDate:          aggregate.EndDate(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO back into an announcement aggregate
// using RestoreAnnouncement, which re-validates the ledger invariant.
func toDomain(dto AnnouncementDTO) (*announcement.Announcement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(dto.StartPoint, dto.Waypoints, dto.Destination)
	if err != nil {
		return nil, err
	}

	maxDims, err := kernel.NewDimensions(dto.MaxLength, dto.MaxWidth, dto.MaxHeight)
	if err != nil {
		return nil, err
	}

	return announcement.RestoreAnnouncement(
		id,
		driverID,
		route,
		maxDims,
		dto.PackageTypes,
		dto.DeclaredCapacity,
		dto.ReservedCapacity,
		dto.StartDate,
		dto.EndDate,
		announcement.Status(dto.Status),
		dto.CreatedAt,
		dto.Version,
	)
}
