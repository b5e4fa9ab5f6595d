package models

// AddressRow одна строка адреса: город, улица, номер дома, количество этажей.
// Сравнивается целиком, поэтому используется как ключ map.
type AddressRow struct {
	City   string
	Street string
	House  string
	Floors string
}

// Cells возвращает поля строки в порядке колонок входного файла
func (r AddressRow) Cells() []string {
	return []string{r.City, r.Street, r.House, r.Floors}
}

// Complete is true when every field is non-empty.
func (r AddressRow) Complete() bool {
	return r.City != "" && r.Street != "" && r.House != "" && r.Floors != ""
}

type RowCount struct {
	Row   AddressRow
	Count int
}

// CityFloor ключ агрегации домов
type CityFloor struct {
	City   string
	Floors string
}

type HouseCount struct {
	CityFloor
	Houses int
}

type Variant string

const (
	// VariantLegacy reads CSV only and labels a city on rows with exactly 3 floors.
	VariantLegacy Variant = "legacy"
	// VariantStandard reads CSV and XML and labels a city on the first row of its group.
	VariantStandard Variant = "standard"
)

type TableStyle string

const (
	TablePlain TableStyle = "plain"
	TableBoxed TableStyle = "boxed"
)

// InputFormat формат данных после распаковки архива
type InputFormat string

const (
	FormatCSV InputFormat = ".csv"
	FormatXML InputFormat = ".xml"
)
