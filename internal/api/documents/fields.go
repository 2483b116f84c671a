package documents

const (
	// Fixed page layout of the NCB KYC form. The classifier records these
	// page indices on every field, not the page the backend anchored the
	// entity to.
	PageOneIndex = 0
	PageTwoIndex = 1

	TotalPages = 2
)

// PageOneFieldNames is the closed set of entity types accepted onto
// page one. Any entity whose type matches neither this set nor
// PageTwoFieldNames is dropped.
var PageOneFieldNames = []string{
	"Date", "CIF", "FirstName", "MiddleName", "LastName", "DateOfBirth",
	"CityOfBirth", "MaritalStatus", "Gender", "PassportNumber", "EmiratesIDNumber",
	"Residency", "NumberOfYears", "CountryOfResidence", "StreetName", "Area",
	"MakaniNumber", "BuildingNumber", "FlatVillaNumber", "CityEmirate", "POBox",
	"Country", "MobileNumber", "AlternativeNumber", "EmailAddress",
}

var PageTwoFieldNames = []string{
	"Employer", "Department", "Designation", "GrossMonthlyIncome",
	"NatureOfBusiness", "PercentageOfOwnership",
}
