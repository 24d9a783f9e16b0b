package websearch

import "strings"

// CompanyProfile describes what a company's interviews tend to focus
// on. Profiles drive the generated question templates for companies
// the static database knows little about.
type CompanyProfile struct {
	Domains []string
	Focus   []string
}

// companyProfiles groups well-known companies by hiring profile.
var companyProfiles = map[string]CompanyProfile{
	"Google":         {Domains: []string{"technology", "cloud", "ai"}, Focus: []string{"system design", "algorithms", "automation"}},
	"Amazon":         {Domains: []string{"ecommerce", "cloud", "technology"}, Focus: []string{"automation", "devops", "testing"}},
	"Meta":           {Domains: []string{"technology", "social", "ai"}, Focus: []string{"frontend", "backend", "automation"}},
	"Apple":          {Domains: []string{"technology", "hardware"}, Focus: []string{"quality", "user experience", "automation"}},
	"Netflix":        {Domains: []string{"streaming", "technology"}, Focus: []string{"performance", "scalability", "automation"}},
	"JPMorgan":       {Domains: []string{"banking", "fintech"}, Focus: []string{"security", "performance"}},
	"Goldman Sachs":  {Domains: []string{"banking", "trading"}, Focus: []string{"algorithms", "performance"}},
	"Morgan Stanley": {Domains: []string{"banking", "investment"}, Focus: []string{"stability", "security"}},
	"Barclays":       {Domains: []string{"banking", "fintech"}, Focus: []string{"security", "automation"}},
	"Citi":           {Domains: []string{"banking", "financial"}, Focus: []string{"integration", "security"}},
	"Microsoft":      {Domains: []string{"technology", "cloud"}, Focus: []string{"quality", "automation"}},
	"IBM":            {Domains: []string{"technology", "consulting"}, Focus: []string{"enterprise", "automation"}},
	"Oracle":         {Domains: []string{"database", "cloud"}, Focus: []string{"performance", "security"}},
	"SAP":            {Domains: []string{"enterprise", "erp"}, Focus: []string{"integration", "automation"}},
	"Salesforce":     {Domains: []string{"crm", "cloud"}, Focus: []string{"customization", "automation"}},
	"Accenture":      {Domains: []string{"consulting", "technology"}, Focus: []string{"integration", "automation"}},
	"Deloitte":       {Domains: []string{"consulting", "audit"}, Focus: []string{"process", "quality"}},
	"Capgemini":      {Domains: []string{"consulting", "technology"}, Focus: []string{"methodology", "automation"}},
	"Cognizant":      {Domains: []string{"technology", "consulting"}, Focus: []string{"delivery", "quality"}},
	"TCS":            {Domains: []string{"technology", "services"}, Focus: []string{"process", "automation"}},
	"Infosys":        {Domains: []string{"technology", "services"}, Focus: []string{"delivery", "automation"}},
}

// defaultProfile covers companies without a known profile.
var defaultProfile = CompanyProfile{
	Domains: []string{"technology"},
	Focus:   []string{"automation", "quality"},
}

// ProfileFor returns the hiring profile for a company, matching the
// profile key case-insensitively.
func ProfileFor(company string) CompanyProfile {
	for name, profile := range companyProfiles {
		if strings.EqualFold(name, company) {
			return profile
		}
	}
	return defaultProfile
}
