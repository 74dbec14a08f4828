package driver

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"
)

const (
	NameMinLength = 2
	NameMaxLength = 50
)

// ErrDriverIsNotConstructed is returned when a Driver was not created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver is the aggregate root for a person who can be assigned to routes.
type Driver struct {
	id          kernel.UUID
	name        string
	licenseType LicenseType

	// availability is false while an active schedule holds the driver
	availability bool

	// isActive lets operators take a driver out of the available pool without touching assignments
	isActive bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDriver registers a new driver. New drivers are available and active.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Alex", driver.LicenseB, time.Now())
func NewDriver(id kernel.UUID, name string, licenseType LicenseType, now time.Time) (*Driver, error) {
	d := &Driver{
		availability:  true,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseType(licenseType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from persisted state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	licenseType LicenseType,
	availability bool,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Driver, error) {
	d := &Driver{
		availability:  availability,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseType(licenseType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) LicenseType() LicenseType {
	return d.licenseType
}

// IsAvailable reports whether the driver may be assigned a route.
func (d *Driver) IsAvailable() bool {
	return d.availability
}

func (d *Driver) IsActive() bool {
	return d.isActive
}

func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Driver) UpdatedAt() time.Time {
	return d.updatedAt
}

// Rename changes the driver's display name.
func (d *Driver) Rename(name string, now time.Time) error {
	if err := d.setName(name); err != nil {
		return err
	}
	d.updatedAt = now
	return nil
}

func (d *Driver) ChangeLicenseType(licenseType LicenseType, now time.Time) error {
	if err := d.setLicenseType(licenseType); err != nil {
		return err
	}
	d.updatedAt = now
	return nil
}

// SetActive flags the driver as active or inactive. It does not affect availability.
func (d *Driver) SetActive(active bool, now time.Time) {
	d.isActive = active
	d.updatedAt = now
}

// Reserve commits an available driver to a new active schedule.
func (d *Driver) Reserve(now time.Time) error {
	if !d.availability {
		return errs.NewConflictError("driver is not available")
	}
	d.availability = false
	d.updatedAt = now
	return nil
}

// Release returns a committed driver to the available pool.
func (d *Driver) Release(now time.Time) error {
	if d.availability {
		return errs.NewConflictError("driver is already available")
	}
	d.availability = true
	d.updatedAt = now
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	length := utf8.RuneCountInString(name)
	if length < NameMinLength || length > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", length, NameMinLength, NameMaxLength)
	}

	d.name = name
	return nil
}

func (d *Driver) setLicenseType(licenseType LicenseType) error {
	if err := licenseType.Validate(); err != nil {
		return err
	}
	d.licenseType = licenseType
	return nil
}
