// file: internals/store/schedule_slots.go
package store

import (
	schedulemodel "tutorku_backend/internals/features/schedule/model"
	helper "tutorku_backend/internals/helpers"
)

func (s *Store) AddScheduleSlot(slot schedulemodel.ScheduleSlotModel) schedulemodel.ScheduleSlotModel {
	slot.ScheduleSlotID = helper.NewID()

	s.mu.Lock()
	s.scheduleSlots = append(s.scheduleSlots, slot)
	s.mu.Unlock()

	s.notifyScheduleChanged()
	return slot
}

func (s *Store) GetScheduleSlotByID(id string) (schedulemodel.ScheduleSlotModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].ScheduleSlotID == id {
			return s.scheduleSlots[i], true
		}
	}
	return schedulemodel.ScheduleSlotModel{}, false
}

// FindScheduleSlot mencari slot yang menempati sel day/time di grid.
func (s *Store) FindScheduleSlot(day schedulemodel.Weekday, t helper.ClockTime) (schedulemodel.ScheduleSlotModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].Day == day && s.scheduleSlots[i].Time.Equal(t) {
			return s.scheduleSlots[i], true
		}
	}
	return schedulemodel.ScheduleSlotModel{}, false
}

// FindActiveScheduleSlot mencari slot Scheduled di sel day/time — dipakai
// guard strict booking. Slot Completed/Cancelled membebaskan selnya.
func (s *Store) FindActiveScheduleSlot(day schedulemodel.Weekday, t helper.ClockTime) (schedulemodel.ScheduleSlotModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].Status != schedulemodel.SlotScheduled {
			continue
		}
		if s.scheduleSlots[i].Day == day && s.scheduleSlots[i].Time.Equal(t) {
			return s.scheduleSlots[i], true
		}
	}
	return schedulemodel.ScheduleSlotModel{}, false
}

func (s *Store) UpdateScheduleSlot(id string, apply func(*schedulemodel.ScheduleSlotModel)) bool {
	s.mu.Lock()
	found := false
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].ScheduleSlotID == id {
			apply(&s.scheduleSlots[i])
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notifyScheduleChanged()
	}
	return found
}

func (s *Store) DeleteScheduleSlot(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.scheduleSlots {
		if s.scheduleSlots[i].ScheduleSlotID == id {
			s.scheduleSlots = append(s.scheduleSlots[:i], s.scheduleSlots[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notifyScheduleChanged()
	}
	return found
}

func (s *Store) ScheduleSlots() []schedulemodel.ScheduleSlotModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]schedulemodel.ScheduleSlotModel(nil), s.scheduleSlots...)
}
