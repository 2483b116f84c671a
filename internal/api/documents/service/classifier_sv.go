package documentsService

import (
	"ProjectKYC/internal/api/documents"
	"ProjectKYC/internal/entity"
)

var (
	pageOneSet = nameSet(documents.PageOneFieldNames)
	pageTwoSet = nameSet(documents.PageTwoFieldNames)
)

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// classifyEntities maps the backend's flat entity list onto the two
// fixed page schemas. An entity is dropped when its value is empty or
// its type matches neither field set; when two entities share a type,
// the one processed last wins.
//
// The recorded page is the schema's fixed page index, not the page the
// backend anchored the entity to. A page-two field detected on an
// unexpected physical page is still reported as page 1.
func classifyEntities(rawEntities []entity.RawEntity) (map[string]entity.ExtractedField, map[string]entity.ExtractedField) {
	pageOne := make(map[string]entity.ExtractedField)
	pageTwo := make(map[string]entity.ExtractedField)

	for _, raw := range rawEntities {
		if raw.Value == "" {
			continue
		}

		var target map[string]entity.ExtractedField
		var page int

		if _, ok := pageOneSet[raw.Type]; ok {
			target = pageOne
			page = documents.PageOneIndex
		} else if _, ok := pageTwoSet[raw.Type]; ok {
			target = pageTwo
			page = documents.PageTwoIndex
		} else {
			continue
		}

		target[raw.Type] = entity.ExtractedField{
			Value:       raw.Value,
			Confidence:  raw.Confidence,
			Page:        page,
			BoundingBox: boundingBoxFrom(raw.Vertices),
		}
	}

	return pageOne, pageTwo
}

// boundingBoxFrom derives the axis-aligned envelope of the polygon's
// vertices. Coordinates are passed through without clamping, so
// out-of-range or zero-area boxes survive unchanged.
func boundingBoxFrom(vertices []entity.NormalizedVertex) *entity.BoundingBox {
	if len(vertices) == 0 {
		return nil
	}

	minX, maxX := vertices[0].X, vertices[0].X
	minY, maxY := vertices[0].Y, vertices[0].Y

	for _, v := range vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	return &entity.BoundingBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

func fieldOrNil(fields map[string]entity.ExtractedField, name string) *entity.ExtractedField {
	f, ok := fields[name]
	if !ok {
		return nil
	}
	return &f
}

func buildPageOneFields(fields map[string]entity.ExtractedField) entity.PageOneFields {
	return entity.PageOneFields{
		Date:               fieldOrNil(fields, "Date"),
		CIF:                fieldOrNil(fields, "CIF"),
		FirstName:          fieldOrNil(fields, "FirstName"),
		MiddleName:         fieldOrNil(fields, "MiddleName"),
		LastName:           fieldOrNil(fields, "LastName"),
		DateOfBirth:        fieldOrNil(fields, "DateOfBirth"),
		CityOfBirth:        fieldOrNil(fields, "CityOfBirth"),
		MaritalStatus:      fieldOrNil(fields, "MaritalStatus"),
		Gender:             fieldOrNil(fields, "Gender"),
		PassportNumber:     fieldOrNil(fields, "PassportNumber"),
		EmiratesIDNumber:   fieldOrNil(fields, "EmiratesIDNumber"),
		Residency:          fieldOrNil(fields, "Residency"),
		NumberOfYears:      fieldOrNil(fields, "NumberOfYears"),
		CountryOfResidence: fieldOrNil(fields, "CountryOfResidence"),
		StreetName:         fieldOrNil(fields, "StreetName"),
		Area:               fieldOrNil(fields, "Area"),
		MakaniNumber:       fieldOrNil(fields, "MakaniNumber"),
		BuildingNumber:     fieldOrNil(fields, "BuildingNumber"),
		FlatVillaNumber:    fieldOrNil(fields, "FlatVillaNumber"),
		CityEmirate:        fieldOrNil(fields, "CityEmirate"),
		POBox:              fieldOrNil(fields, "POBox"),
		Country:            fieldOrNil(fields, "Country"),
		MobileNumber:       fieldOrNil(fields, "MobileNumber"),
		AlternativeNumber:  fieldOrNil(fields, "AlternativeNumber"),
		EmailAddress:       fieldOrNil(fields, "EmailAddress"),
	}
}

func buildPageTwoFields(fields map[string]entity.ExtractedField) entity.PageTwoFields {
	return entity.PageTwoFields{
		Employer:              fieldOrNil(fields, "Employer"),
		Department:            fieldOrNil(fields, "Department"),
		Designation:           fieldOrNil(fields, "Designation"),
		GrossMonthlyIncome:    fieldOrNil(fields, "GrossMonthlyIncome"),
		NatureOfBusiness:      fieldOrNil(fields, "NatureOfBusiness"),
		PercentageOfOwnership: fieldOrNil(fields, "PercentageOfOwnership"),
	}
}
