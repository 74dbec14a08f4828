package driver

import (
	"fmt"
	"strings"

	"scheduling/internal/pkg/errs"
)

// LicenseType is the class of driving license a driver holds.
type LicenseType string

const (
	LicenseA LicenseType = "A"
	LicenseB LicenseType = "B"
	LicenseC LicenseType = "C"
	LicenseD LicenseType = "D"
)

// ParseLicenseType converts external input into a LicenseType.
func ParseLicenseType(s string) (LicenseType, error) {
	lt := LicenseType(strings.TrimSpace(s))
	if err := lt.Validate(); err != nil {
		return "", err
	}
	return lt, nil
}

func (lt LicenseType) Validate() error {
	switch lt {
	case LicenseA, LicenseB, LicenseC, LicenseD:
		return nil
	case "":
		return errs.NewValueIsRequiredError("licenseType")
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"licenseType",
			fmt.Errorf("license type must be A, B, C, or D, got %q", string(lt)),
		)
	}
}

func (lt LicenseType) String() string {
	return string(lt)
}
