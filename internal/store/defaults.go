package store

// DefaultEntries is the parameter set installed into a fresh catalog. It
// covers the baseline checks most firewall hardening guides start from;
// operators are expected to prune and extend it.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Name:         "operational-mode",
			Description:  "Device must be running in normal operational mode",
			QueryCommand: "show system info",
			Expected:     []string{"normal"},
			Pattern:      `operational-mode:\s*(\S+)`,
			ResultType:   "single",
		},
		{
			Name:         "ntp-synched",
			Description:  "Clock must be synchronized to an NTP server",
			QueryCommand: "show ntp",
			Expected:     []string{"yes"},
			Pattern:      `synched:\s*(\S+)`,
			ResultType:   "single",
		},
		{
			Name:         "login-idle-timeout",
			Description:  "Management sessions must time out after 10 minutes",
			QueryCommand: "show system setting management",
			Expected:     []string{"10"},
			Pattern:      `idle-timeout:\s*(\d+)`,
			ResultType:   "single",
		},
		{
			Name:         "failed-attempts-lockout",
			Description:  "Accounts must lock after 3 failed login attempts",
			QueryCommand: "show system setting management",
			Expected:     []string{"3"},
			Pattern:      `failed-attempts:\s*(\d+)`,
			ResultType:   "single",
		},
		{
			Name:         "dns-servers",
			Description:  "Device must resolve through the approved DNS servers",
			QueryCommand: "show system info",
			Expected:     []string{"10.0.0.53", "10.0.1.53"},
			Pattern:      `dns-\w+:\s*(\S+)`,
			ResultType:   "list",
		},
	}
}
