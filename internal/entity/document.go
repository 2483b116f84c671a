package entity

// NormalizedVertex is a single point of an entity's bounding polygon,
// in page-relative 0..1 coordinates.
type NormalizedVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RawEntity is one classified value as returned by the document
// understanding backend, before it is mapped onto a page schema.
type RawEntity struct {
	Type       string             `json:"type"`
	Value      string             `json:"value"`
	Confidence float64            `json:"confidence"`
	Vertices   []NormalizedVertex `json:"vertices,omitempty"`
}

type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ExtractedField struct {
	Value       string       `json:"value"`
	Confidence  float64      `json:"confidence"`
	Page        int          `json:"page"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}

// PageOneFields is the closed set of personal and address fields
// expected on page 1 of the KYC form. A nil member means the backend
// returned no usable value for that field.
type PageOneFields struct {
	Date               *ExtractedField `json:"Date,omitempty"`
	CIF                *ExtractedField `json:"CIF,omitempty"`
	FirstName          *ExtractedField `json:"FirstName,omitempty"`
	MiddleName         *ExtractedField `json:"MiddleName,omitempty"`
	LastName           *ExtractedField `json:"LastName,omitempty"`
	DateOfBirth        *ExtractedField `json:"DateOfBirth,omitempty"`
	CityOfBirth        *ExtractedField `json:"CityOfBirth,omitempty"`
	MaritalStatus      *ExtractedField `json:"MaritalStatus,omitempty"`
	Gender             *ExtractedField `json:"Gender,omitempty"`
	PassportNumber     *ExtractedField `json:"PassportNumber,omitempty"`
	EmiratesIDNumber   *ExtractedField `json:"EmiratesIDNumber,omitempty"`
	Residency          *ExtractedField `json:"Residency,omitempty"`
	NumberOfYears      *ExtractedField `json:"NumberOfYears,omitempty"`
	CountryOfResidence *ExtractedField `json:"CountryOfResidence,omitempty"`
	StreetName         *ExtractedField `json:"StreetName,omitempty"`
	Area               *ExtractedField `json:"Area,omitempty"`
	MakaniNumber       *ExtractedField `json:"MakaniNumber,omitempty"`
	BuildingNumber     *ExtractedField `json:"BuildingNumber,omitempty"`
	FlatVillaNumber    *ExtractedField `json:"FlatVillaNumber,omitempty"`
	CityEmirate        *ExtractedField `json:"CityEmirate,omitempty"`
	POBox              *ExtractedField `json:"POBox,omitempty"`
	Country            *ExtractedField `json:"Country,omitempty"`
	MobileNumber       *ExtractedField `json:"MobileNumber,omitempty"`
	AlternativeNumber  *ExtractedField `json:"AlternativeNumber,omitempty"`
	EmailAddress       *ExtractedField `json:"EmailAddress,omitempty"`
}

// PageTwoFields is the closed set of employment fields expected on
// page 2 of the KYC form.
type PageTwoFields struct {
	Employer              *ExtractedField `json:"Employer,omitempty"`
	Department            *ExtractedField `json:"Department,omitempty"`
	Designation           *ExtractedField `json:"Designation,omitempty"`
	GrossMonthlyIncome    *ExtractedField `json:"GrossMonthlyIncome,omitempty"`
	NatureOfBusiness      *ExtractedField `json:"NatureOfBusiness,omitempty"`
	PercentageOfOwnership *ExtractedField `json:"PercentageOfOwnership,omitempty"`
}

type ExtractedInformation struct {
	PageOne PageOneFields `json:"page_one"`
	PageTwo PageTwoFields `json:"page_two"`
}

type ProcessingSummary struct {
	TotalPages            int     `json:"total_pages"`
	SuccessfulPages       int     `json:"successful_pages"`
	FailedPages           int     `json:"failed_pages"`
	AverageConfidence     float64 `json:"average_confidence"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	ExtractorUsed         string  `json:"extractor_used"`
}
