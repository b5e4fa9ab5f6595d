package main

import (
	"strconv"
	"strings"

	"github.com/google/btree"
	"github.com/pivolan/address_stats/domain/models"
)

const btreeDegree = 8

// HouseCounts количество различных домов для каждой пары (город, этажность),
// всегда упорядочено по ключу.
type HouseCounts struct {
	tree *btree.BTreeG[models.HouseCount]
}

func NewHouseCounts() *HouseCounts {
	return &HouseCounts{tree: btree.NewG[models.HouseCount](btreeDegree, lessHouseCount)}
}

func lessHouseCount(a, b models.HouseCount) bool {
	return LessCityFloor(a.CityFloor, b.CityFloor)
}

// LessCityFloor orders by city, then by floor count. Floors compare numerically
// when both parse as integers, otherwise as strings.
func LessCityFloor(a, b models.CityFloor) bool {
	if a.City != b.City {
		return a.City < b.City
	}
	af, errA := strconv.Atoi(strings.TrimSpace(a.Floors))
	bf, errB := strconv.Atoi(strings.TrimSpace(b.Floors))
	if errA == nil && errB == nil && af != bf {
		return af < bf
	}
	if errA == nil && errB != nil {
		return true
	}
	if errA != nil && errB == nil {
		return false
	}
	return a.Floors < b.Floors
}

// Inc adds one house to key and returns the new total.
func (h *HouseCounts) Inc(key models.CityFloor) int {
	item, _ := h.tree.Get(models.HouseCount{CityFloor: key})
	item.CityFloor = key
	item.Houses++
	h.tree.ReplaceOrInsert(item)
	return item.Houses
}

func (h *HouseCounts) Get(key models.CityFloor) int {
	item, _ := h.tree.Get(models.HouseCount{CityFloor: key})
	return item.Houses
}

func (h *HouseCounts) Len() int {
	return h.tree.Len()
}

// Total is the sum over all entries, equal to the number of distinct rows aggregated.
func (h *HouseCounts) Total() int {
	total := 0
	h.tree.Ascend(func(item models.HouseCount) bool {
		total += item.Houses
		return true
	})
	return total
}

// Entries returns the counts in ascending key order.
func (h *HouseCounts) Entries() []models.HouseCount {
	result := make([]models.HouseCount, 0, h.tree.Len())
	h.tree.Ascend(func(item models.HouseCount) bool {
		result = append(result, item)
		return true
	})
	return result
}

// AggregateHouses counts distinct addresses per (city, floors); repeated rows count once.
func AggregateHouses(rows *RowCounts) *HouseCounts {
	houses := NewHouseCounts()
	for _, entry := range rows.Entries() {
		houses.Inc(models.CityFloor{City: entry.Row.City, Floors: entry.Row.Floors})
	}
	return houses
}
