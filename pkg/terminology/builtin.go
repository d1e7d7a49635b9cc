package terminology

const (
	hl7Base = "http://hl7.org/fhir/"
	thoBase = "http://terminology.hl7.org/CodeSystem/"
	vsBase  = "http://hl7.org/fhir/ValueSet/"
	sct     = "http://snomed.info/sct"
	ucum    = "http://unitsofmeasure.org"
)

// builtinSystems are the code systems behind the catalogue's bindings.
var builtinSystems = map[string]map[string]string{
	hl7Base + "publication-status": {
		"draft":   "Draft",
		"active":  "Active",
		"retired": "Retired",
		"unknown": "Unknown",
	},
	hl7Base + "CodeSystem/medicationknowledge-status": {
		"active":           "Active",
		"inactive":         "Inactive",
		"entered-in-error": "Entered in Error",
	},
	hl7Base + "exposure-state": {
		"exposure":             "Exposure",
		"exposure-alternative": "Exposure Alternative",
	},
	hl7Base + "variable-type": {
		"dichotomous": "Dichotomous",
		"continuous":  "Continuous",
		"descriptive": "Descriptive",
	},
	hl7Base + "group-measure": {
		"mean":             "Mean",
		"median":           "Median",
		"mean-of-mean":     "Mean of Study Means",
		"mean-of-median":   "Mean of Study Medins",
		"median-of-mean":   "Median of Study Means",
		"median-of-median": "Median of Study Medians",
	},
	hl7Base + "narrative-status": {
		"generated":  "Generated",
		"extensions": "Extensions",
		"additional": "Additional",
		"empty":      "Empty",
	},
	hl7Base + "identifier-use": {
		"usual":     "Usual",
		"official":  "Official",
		"temp":      "Temp",
		"secondary": "Secondary",
		"old":       "Old",
	},
	hl7Base + "quantity-comparator": {
		"<":  "Less than",
		"<=": "Less or Equal to",
		">=": "Greater or Equal to",
		">":  "Greater than",
	},
	thoBase + "synthesis-type": {
		"std-MA":         "summary data meta-analysis",
		"IPD-MA":         "individual patient data meta-analysis",
		"indirect-NMA":   "indirect network meta-analysis",
		"combined-NMA":   "combined direct plus indirect network meta-analysis",
		"range":          "range of results",
		"classification": "classifcation of results",
	},
	thoBase + "study-type": {
		"RCT":          "randomized trial",
		"CCT":          "controlled trial (non-randomized)",
		"cohort":       "comparative cohort study",
		"case-control": "case-control study",
		"series":       "uncontrolled cohort or case series",
		"case-report":  "case report",
		"mixed":        "mixed methods",
	},
	thoBase + "effect-estimate-type": {
		"relative-RR":         "relative risk",
		"relative-OR":         "odds ratio",
		"relative-HR":         "hazard ratio",
		"absolute-ARD":        "absolute risk difference",
		"absolute-MeanDiff":   "mean difference",
		"absolute-SMD":        "standardized mean difference",
		"absolute-MedianDiff": "median difference",
	},
	thoBase + "precision-estimate-type": {
		"CI":  "confidence interval",
		"IQR": "interquartile range",
		"SD":  "standard deviation",
		"SE":  "standard error",
	},
	thoBase + "evidence-quality": {
		"high":     "High quality",
		"moderate": "Moderate quality",
		"low":      "Low quality",
		"very-low": "Very low quality",
	},
	thoBase + "certainty-subcomponent-type": {
		"RiskOfBias":           "Risk of bias",
		"Inconsistency":        "Inconsistency",
		"Indirectness":         "Indirectness",
		"Imprecision":          "Imprecision",
		"PublicationBias":      "Publication bias",
		"DoseResponseGradient": "Dose response gradient",
		"PlausibleConfounding": "Plausible confounding",
		"LargeEffect":          "Large effect",
	},
	thoBase + "certainty-subcomponent-rating": {
		"no-change":        "no change to rating",
		"downcode1":        "reduce rating: -1",
		"downcode2":        "reduce rating: -2",
		"downcode3":        "reduce rating: -3",
		"upcode1":          "increase rating: +1",
		"upcode2":          "increase rating: +2",
		"no-concern":       "no serious concern",
		"serious-concern":  "serious concern",
		"critical-concern": "critical concern",
		"present":          "present",
		"absent":           "absent",
	},
	thoBase + "medicationknowledge-characteristic": {
		"imprintcd": "Imprint Code",
		"size":      "Size",
		"shape":     "Shape",
		"color":     "Color",
		"coating":   "Coating",
		"scoring":   "Scoring",
		"logo":      "Logo",
		"image":     "Image",
	},
}

// builtinValueSets maps each bound value set to the systems it includes.
var builtinValueSets = map[string][]string{
	vsBase + "publication-status":                 {hl7Base + "publication-status"},
	vsBase + "medicationknowledge-status":         {hl7Base + "CodeSystem/medicationknowledge-status"},
	vsBase + "exposure-state":                     {hl7Base + "exposure-state"},
	vsBase + "variable-type":                      {hl7Base + "variable-type"},
	vsBase + "group-measure":                      {hl7Base + "group-measure"},
	vsBase + "narrative-status":                   {hl7Base + "narrative-status"},
	vsBase + "identifier-use":                     {hl7Base + "identifier-use"},
	vsBase + "quantity-comparator":                {hl7Base + "quantity-comparator"},
	vsBase + "synthesis-type":                     {thoBase + "synthesis-type"},
	vsBase + "study-type":                         {thoBase + "study-type"},
	vsBase + "effect-estimate-type":               {thoBase + "effect-estimate-type"},
	vsBase + "precision-estimate-type":            {thoBase + "precision-estimate-type"},
	vsBase + "evidence-quality":                   {thoBase + "evidence-quality"},
	vsBase + "certainty-subcomponent-type":        {thoBase + "certainty-subcomponent-type"},
	vsBase + "certainty-subcomponent-rating":      {thoBase + "certainty-subcomponent-rating"},
	vsBase + "medicationknowledge-characteristic": {thoBase + "medicationknowledge-characteristic"},
	vsBase + "medication-codes":                   {sct},
	vsBase + "medication-form-codes":              {sct},
	vsBase + "route-codes":                        {sct},
	vsBase + "ucum-units":                         {ucum},
	vsBase + "currencies":                         {"urn:iso:std:iso:4217"},
	vsBase + "languages":                          {"urn:ietf:bcp:47"},
}

func (s *InMemory) loadBuiltins() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for url, codes := range builtinSystems {
		s.addCodeSystem(url, codes)
	}
	for url, systems := range builtinValueSets {
		s.includeSystems(url, systems...)
	}
}
