// internal/models/profile.go
package models

// UserProfile holds questionnaire answers. Every field is optional; an empty
// string or empty slice means the question was not answered.
type UserProfile struct {
	Budget              string `json:"budget,omitempty" yaml:"budget,omitempty" mapstructure:"budget"`
	NetWorth            string `json:"netWorth,omitempty" yaml:"netWorth,omitempty" mapstructure:"netWorth"`
	LiquidCapital       string `json:"liquidCapital,omitempty" yaml:"liquidCapital,omitempty" mapstructure:"liquidCapital"`
	CreditScore         string `json:"creditScore,omitempty" yaml:"creditScore,omitempty" mapstructure:"creditScore"`
	FinancingPreference string `json:"financingPreference,omitempty" yaml:"financingPreference,omitempty" mapstructure:"financingPreference"`

	Interests       []string `json:"interests,omitempty" yaml:"interests,omitempty" mapstructure:"interests"`
	FranchiseModels []string `json:"franchiseModels,omitempty" yaml:"franchiseModels,omitempty" mapstructure:"franchiseModels"`
	UnitPreference  string   `json:"unitPreference,omitempty" yaml:"unitPreference,omitempty" mapstructure:"unitPreference"`
	DayToDay        string   `json:"dayToDay,omitempty" yaml:"dayToDay,omitempty" mapstructure:"dayToDay"`
	WorkLocation    string   `json:"workLocation,omitempty" yaml:"workLocation,omitempty" mapstructure:"workLocation"`

	AgeGroup           string `json:"ageGroup,omitempty" yaml:"ageGroup,omitempty" mapstructure:"ageGroup"`
	Education          string `json:"education,omitempty" yaml:"education,omitempty" mapstructure:"education"`
	CurrentWork        string `json:"currentWork,omitempty" yaml:"currentWork,omitempty" mapstructure:"currentWork"`
	ManagementYears    string `json:"managementYears,omitempty" yaml:"managementYears,omitempty" mapstructure:"managementYears"`
	PriorOwnership     string `json:"priorOwnership,omitempty" yaml:"priorOwnership,omitempty" mapstructure:"priorOwnership"`
	MarketingLevel     string `json:"marketingLevel,omitempty" yaml:"marketingLevel,omitempty" mapstructure:"marketingLevel"`
	OperationsLevel    string `json:"operationsLevel,omitempty" yaml:"operationsLevel,omitempty" mapstructure:"operationsLevel"`
	FinanceLevel       string `json:"financeLevel,omitempty" yaml:"financeLevel,omitempty" mapstructure:"financeLevel"`
	EmployeeInterest   string `json:"employeeInterest,omitempty" yaml:"employeeInterest,omitempty" mapstructure:"employeeInterest"`
	IdealEmployeeCount string `json:"idealEmployeeCount,omitempty" yaml:"idealEmployeeCount,omitempty" mapstructure:"idealEmployeeCount"`

	Style           string `json:"style,omitempty" yaml:"style,omitempty" mapstructure:"style"`
	LeadershipStyle string `json:"leadershipStyle,omitempty" yaml:"leadershipStyle,omitempty" mapstructure:"leadershipStyle"`
	HoursYear1      string `json:"hoursYear1,omitempty" yaml:"hoursYear1,omitempty" mapstructure:"hoursYear1"`
	HoursYear2      string `json:"hoursYear2,omitempty" yaml:"hoursYear2,omitempty" mapstructure:"hoursYear2"`

	RiskTolerance        string `json:"riskTolerance,omitempty" yaml:"riskTolerance,omitempty" mapstructure:"riskTolerance"`
	ExitStrategy         string `json:"exitStrategy,omitempty" yaml:"exitStrategy,omitempty" mapstructure:"exitStrategy"`
	LitigationTolerance  string `json:"litigationTolerance,omitempty" yaml:"litigationTolerance,omitempty" mapstructure:"litigationTolerance"`
	ClosedUnitsTolerance string `json:"closedUnitsTolerance,omitempty" yaml:"closedUnitsTolerance,omitempty" mapstructure:"closedUnitsTolerance"`
	PassiveInvestor      string `json:"passiveInvestor,omitempty" yaml:"passiveInvestor,omitempty" mapstructure:"passiveInvestor"`
	TimelineToOpen       string `json:"timelineToOpen,omitempty" yaml:"timelineToOpen,omitempty" mapstructure:"timelineToOpen"`
	Location             string `json:"location,omitempty" yaml:"location,omitempty" mapstructure:"location"`
	Timeline             string `json:"timeline,omitempty" yaml:"timeline,omitempty" mapstructure:"timeline"`

	CommitmentLevel     string   `json:"commitmentLevel,omitempty" yaml:"commitmentLevel,omitempty" mapstructure:"commitmentLevel"`
	ConsideringDuration string   `json:"consideringDuration,omitempty" yaml:"consideringDuration,omitempty" mapstructure:"consideringDuration"`
	ValuesImportance    string   `json:"valuesImportance,omitempty" yaml:"valuesImportance,omitempty" mapstructure:"valuesImportance"`
	CoreValues          []string `json:"coreValues,omitempty" yaml:"coreValues,omitempty" mapstructure:"coreValues"`
	WhyFranchise        string   `json:"whyFranchise,omitempty" yaml:"whyFranchise,omitempty" mapstructure:"whyFranchise"`
	BiggestConcerns     string   `json:"biggestConcerns,omitempty" yaml:"biggestConcerns,omitempty" mapstructure:"biggestConcerns"`
	Goals               string   `json:"goals,omitempty" yaml:"goals,omitempty" mapstructure:"goals"`
}

// HasExtendedFields reports whether the profile answers anything beyond the
// short form (budget, interests, style, risk tolerance and timeline).
func (p UserProfile) HasExtendedFields() bool {
	short := UserProfile{
		Budget:        p.Budget,
		Interests:     p.Interests,
		Style:         p.Style,
		RiskTolerance: p.RiskTolerance,
		Timeline:      p.Timeline,
	}
	return !p.equalAnswers(short)
}

// IsEmpty reports whether no question was answered at all.
func (p UserProfile) IsEmpty() bool {
	return p.equalAnswers(UserProfile{})
}

func (p UserProfile) equalAnswers(o UserProfile) bool {
	a, b := p.answers(), o.answers()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return len(p.Interests) == len(o.Interests) &&
		len(p.FranchiseModels) == len(o.FranchiseModels) &&
		len(p.CoreValues) == len(o.CoreValues)
}

func (p UserProfile) answers() []string {
	return []string{
		p.Budget, p.NetWorth, p.LiquidCapital, p.CreditScore, p.FinancingPreference,
		p.UnitPreference, p.DayToDay, p.WorkLocation,
		p.AgeGroup, p.Education, p.CurrentWork, p.ManagementYears, p.PriorOwnership,
		p.MarketingLevel, p.OperationsLevel, p.FinanceLevel, p.EmployeeInterest, p.IdealEmployeeCount,
		p.Style, p.LeadershipStyle, p.HoursYear1, p.HoursYear2,
		p.RiskTolerance, p.ExitStrategy, p.LitigationTolerance, p.ClosedUnitsTolerance,
		p.PassiveInvestor, p.TimelineToOpen, p.Location, p.Timeline,
		p.CommitmentLevel, p.ConsideringDuration, p.ValuesImportance,
		p.WhyFranchise, p.BiggestConcerns, p.Goals,
	}
}
