package baseinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/distribution/reference"
)

// Setting describes one named piece of base information.
type Setting struct {
	// Name is the key used in selectors and in baseinfo.json.
	Name string

	// Label is shown when the value is prompted for.
	Label string

	// Default is the value used before anything was set or after a reset.
	Default string

	// Validate rejects malformed values. Nil accepts anything non-empty.
	Validate func(value string) error
}

// SupportedERPs lists the ERP systems bb can manage.
var SupportedERPs = []string{"odoo", "flectra", "cubicerp"}

// siteNameRegex: alphanumeric + hyphens, starting and ending alphanumeric.
var siteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

var versionRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Settings is the ordered list of known settings. "all" walks it in
// this order, and --show prints it in this order.
var Settings = []Setting{
	{Name: "site_name", Label: "Site name", Default: "erp-site", Validate: validateSiteName},
	{Name: "erp", Label: "ERP system", Default: "odoo", Validate: validateERP},
	{Name: "erp_version", Label: "ERP version", Default: "16.0", Validate: validateVersion},
	{Name: "docker_image", Label: "Docker image", Default: "odoo:16.0", Validate: validateImage},
	{Name: "db_host", Label: "Database host", Default: "db"},
	{Name: "db_user", Label: "Database user", Default: "odoo"},
	{Name: "http_port", Label: "HTTP port", Default: "8069", Validate: validatePort},
}

// Lookup finds a known setting by name.
func Lookup(name string) (Setting, bool) {
	for _, s := range Settings {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}

// Defaults returns a fresh map of every setting's default value.
func Defaults() map[string]string {
	values := make(map[string]string, len(Settings))
	for _, s := range Settings {
		values[s.Name] = s.Default
	}
	return values
}

// Check validates value for the setting.
func (s Setting) Check(value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", s.Name)
	}
	if s.Validate == nil {
		return nil
	}
	if err := s.Validate(value); err != nil {
		return fmt.Errorf("invalid %s: %w", s.Name, err)
	}
	return nil
}

func validateSiteName(v string) error {
	if !siteNameRegex.MatchString(v) {
		return fmt.Errorf("%q must contain only alphanumeric characters and hyphens, and start/end with alphanumeric", v)
	}
	return nil
}

func validateERP(v string) error {
	for _, erp := range SupportedERPs {
		if v == erp {
			return nil
		}
	}
	return fmt.Errorf("%q is not supported (valid: %s)", v, strings.Join(SupportedERPs, ", "))
}

func validateVersion(v string) error {
	if !versionRegex.MatchString(v) {
		return fmt.Errorf("%q is not a version like 16.0", v)
	}
	return nil
}

// validateImage accepts anything docker would accept as an image
// reference, e.g. "odoo:16", "registry.example.com/acme/erp@sha256:...".
func validateImage(v string) error {
	if _, err := reference.ParseNormalizedNamed(v); err != nil {
		return err
	}
	return nil
}

func validatePort(v string) error {
	port, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%q is not a number", v)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return nil
}
