package main

import "github.com/pivolan/address_stats/domain/models"

// RowCounts считает вхождения строк, сохраняя порядок первого появления
type RowCounts struct {
	order  []models.AddressRow
	counts map[models.AddressRow]int
}

func NewRowCounts() *RowCounts {
	return &RowCounts{counts: map[models.AddressRow]int{}}
}

// Add increments the count of row and returns the new value.
func (r *RowCounts) Add(row models.AddressRow) int {
	if _, ok := r.counts[row]; !ok {
		r.order = append(r.order, row)
	}
	r.counts[row]++
	return r.counts[row]
}

func (r *RowCounts) Count(row models.AddressRow) int {
	return r.counts[row]
}

// Len is the number of distinct rows.
func (r *RowCounts) Len() int {
	return len(r.order)
}

// Total is the number of rows read, duplicates included.
func (r *RowCounts) Total() int {
	total := 0
	for _, c := range r.counts {
		total += c
	}
	return total
}

func (r *RowCounts) Entries() []models.RowCount {
	result := make([]models.RowCount, 0, len(r.order))
	for _, row := range r.order {
		result = append(result, models.RowCount{Row: row, Count: r.counts[row]})
	}
	return result
}

// Duplicates returns rows seen more than once, in first-seen order.
func (r *RowCounts) Duplicates() []models.RowCount {
	result := []models.RowCount{}
	for _, row := range r.order {
		if c := r.counts[row]; c > 1 {
			result = append(result, models.RowCount{Row: row, Count: c})
		}
	}
	return result
}
