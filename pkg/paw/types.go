package paw

import (
	"encoding/json"
	"fmt"
	"time"
)

// WebappRef is a lightweight handle for a webapp identified by its domain
// name. Two refs are equal exactly when their domains match.
type WebappRef struct {
	Domain string `json:"domain_name" yaml:"domain_name"`
}

// Ref builds a WebappRef for a domain.
func Ref(domain string) WebappRef {
	return WebappRef{Domain: domain}
}

// String implements fmt.Stringer.
func (r WebappRef) String() string {
	return r.Domain
}

// Webapp represents a webapp resource as returned by the API.
type Webapp struct {
	ID                        int    `json:"id"                          yaml:"id"`
	User                      string `json:"user"                        yaml:"user"`
	DomainName                string `json:"domain_name"                 yaml:"domain_name"`
	PythonVersion             string `json:"python_version"              yaml:"python_version"`
	SourceDirectory           string `json:"source_directory"            yaml:"source_directory"`
	WorkingDirectory          string `json:"working_directory"           yaml:"working_directory"`
	VirtualenvPath            string `json:"virtualenv_path"             yaml:"virtualenv_path"`
	Expiry                    string `json:"expiry"                      yaml:"expiry"`
	ForceHTTPS                bool   `json:"force_https"                 yaml:"force_https"`
	PasswordProtectionEnabled bool   `json:"password_protection_enabled" yaml:"password_protection_enabled"`
}

// WebappCreateRequest describes a webapp to create. PythonVersion accepts the
// dotted form ("3.10"); it is resolved to the interpreter identifier the API
// expects ("python310") during Create.
type WebappCreateRequest struct {
	Domain         string `json:"domain_name"      yaml:"domain_name"`
	PythonVersion  string `json:"python_version"   yaml:"python_version"`
	VirtualenvPath string `json:"virtualenv_path"  yaml:"virtualenv_path"`
	ProjectPath    string `json:"source_directory" yaml:"source_directory"`

	// Nuke deletes any existing webapp for the domain before creating. The
	// delete itself is best-effort; only the create is checked.
	Nuke bool `json:"-" yaml:"-"`
}

// StaticMapping routes a URL path prefix to a server-side directory.
type StaticMapping struct {
	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	URL  string `json:"url"          yaml:"url"`
	Path string `json:"path"         yaml:"path"`
}

// CPUUsage reports account-wide CPU consumption against the daily quota.
type CPUUsage struct {
	DailyCPULimitSeconds      int     `json:"daily_cpu_limit_seconds"       yaml:"daily_cpu_limit_seconds"`
	DailyCPUTotalUsageSeconds float64 `json:"daily_cpu_total_usage_seconds" yaml:"daily_cpu_total_usage_seconds"`
	NextResetTime             string  `json:"next_reset_time"               yaml:"next_reset_time"`
}

// SSLInfo describes the certificate installed for a webapp. NotAfter is
// decoded from the textual timestamp the API returns.
type SSLInfo struct {
	NotAfter              time.Time `json:"not_after"               yaml:"not_after"`
	IssuerName            string    `json:"issuer_name"             yaml:"issuer_name"`
	SubjectName           string    `json:"subject_name"            yaml:"subject_name"`
	SubjectAlternateNames []string  `json:"subject_alternate_names" yaml:"subject_alternate_names"`
}

// certTimeLayouts are the formats the API has been observed to use for
// certificate expiry timestamps.
var certTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan _2 15:04:05 2006 MST",
	"Jan 2 15:04:05 2006 MST",
}

// ParseCertTime parses a certificate expiry timestamp in any of the formats
// the API is known to emit.
func ParseCertTime(value string) (time.Time, error) {
	for _, layout := range certTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized certificate timestamp %q", value)
}

// UnmarshalJSON decodes SSLInfo, converting the textual not_after field into
// a time.Time.
func (s *SSLInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		NotAfter              string   `json:"not_after"`
		IssuerName            string   `json:"issuer_name"`
		SubjectName           string   `json:"subject_name"`
		SubjectAlternateNames []string `json:"subject_alternate_names"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decoding SSL info: %w", err)
	}

	s.IssuerName = raw.IssuerName
	s.SubjectName = raw.SubjectName
	s.SubjectAlternateNames = raw.SubjectAlternateNames

	if raw.NotAfter != "" {
		notAfter, err := ParseCertTime(raw.NotAfter)
		if err != nil {
			return fmt.Errorf("parsing not_after: %w", err)
		}

		s.NotAfter = notAfter
	}

	return nil
}

// PythonVersions maps dotted Python versions to the interpreter identifiers
// the webapps API expects.
var PythonVersions = map[string]string{
	"3.7":  "python37",
	"3.8":  "python38",
	"3.9":  "python39",
	"3.10": "python310",
	"3.11": "python311",
	"3.12": "python312",
	"3.13": "python313",
}

// ResolvePythonVersion converts a dotted version ("3.10") to its interpreter
// identifier ("python310"). Already-resolved identifiers pass through.
func ResolvePythonVersion(version string) (string, error) {
	if resolved, ok := PythonVersions[version]; ok {
		return resolved, nil
	}

	for _, resolved := range PythonVersions {
		if version == resolved {
			return version, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownPythonVersion, version)
}
