package domain

// HydrationSchedule is the fixed set of hourly water check-in slots,
// 08:00 through 19:00 in international hour numbering.
var HydrationSchedule = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

// DayPeriod is a coarse classification of an international hour.
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"
	PeriodAfternoon DayPeriod = "afternoon"
	PeriodEvening   DayPeriod = "evening"
)

// SlotStatus describes one hydration slot for rendering.
type SlotStatus struct {
	Hour      int       `json:"hour"`
	LocalHour int       `json:"localHour"`
	Period    DayPeriod `json:"period"`
	Completed bool      `json:"completed"`
	Current   bool      `json:"current"`
}

// HydrationSnapshot is the derived hydration state for one day.
type HydrationSnapshot struct {
	CompletedCount int          `json:"completedCount"`
	TotalSlots     int          `json:"totalSlots"`
	Slots          []SlotStatus `json:"slots"`
}

// ScheduledHour reports whether hour is one of the fixed check-in slots.
func ScheduledHour(hour int) bool {
	for _, h := range HydrationSchedule {
		if h == hour {
			return true
		}
	}
	return false
}

// ToggleWaterSlot flips completion of the given hour slot for a day.
// Toggling the same slot twice restores the original state. Hours outside
// the schedule are rejected with no state change.
func (p *ProfileState) ToggleWaterSlot(day string, hour int) error {
	if !ScheduledHour(hour) {
		return ErrInvalidSlot
	}
	if p.WaterLog == nil {
		p.WaterLog = make(map[string][]int)
	}
	slots := p.WaterLog[day]
	for i, h := range slots {
		if h == hour {
			p.WaterLog[day] = append(slots[:i], slots[i+1:]...)
			return nil
		}
	}
	p.WaterLog[day] = append(slots, hour)
	return nil
}

// CompletionRatio returns the completed fraction of the day's schedule,
// 0 for an unlogged day through 1.0 for all twelve slots.
func (p *ProfileState) CompletionRatio(day string) float64 {
	return float64(len(p.WaterLog[day])) / float64(len(HydrationSchedule))
}

// HydrationStatus derives the per-slot view for one day. currentHour marks
// the "now" slot so the UI can highlight it; pass an out-of-schedule value
// to mark none.
func (p *ProfileState) HydrationStatus(day string, currentHour int) HydrationSnapshot {
	completed := make(map[int]bool, len(p.WaterLog[day]))
	for _, h := range p.WaterLog[day] {
		completed[h] = true
	}

	slots := make([]SlotStatus, 0, len(HydrationSchedule))
	for _, h := range HydrationSchedule {
		slots = append(slots, SlotStatus{
			Hour:      h,
			LocalHour: LocalHourLabel(h),
			Period:    PeriodForHour(h),
			Completed: completed[h],
			Current:   h == currentHour,
		})
	}

	return HydrationSnapshot{
		CompletedCount: len(completed),
		TotalSlots:     len(HydrationSchedule),
		Slots:          slots,
	}
}

// LocalHourLabel converts an international hour to the cyclic 12-hour
// offset label shown on slot cards: 8 -> 2, 19 -> 1, 18 -> 12. Scheduling
// and period classification always use the international hour.
func LocalHourLabel(hour int) int {
	local := hour - 6
	if local <= 0 {
		local += 12
	}
	if local > 12 {
		local -= 12
	}
	return local
}

// PeriodForHour classifies an international hour into a day period.
func PeriodForHour(hour int) DayPeriod {
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
