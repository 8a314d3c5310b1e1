package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Change что изменил пользователь последним
type Change string

const (
	ChangeServices Change = "services"
	ChangeStaff    Change = "staff"
)

// WarningCode код предупреждения для пользователя
type WarningCode string

const (
	// WarningStaffIncompatible выбранный сотрудник не выполняет новые услуги и был сброшен
	WarningStaffIncompatible WarningCode = "staff_incompatible"
	// WarningStaffInactive выбранный сотрудник неактивен и был сброшен
	WarningStaffInactive WarningCode = "staff_inactive"
	// WarningServicesDropped часть услуг не выполняется новым сотрудником и была сброшена
	WarningServicesDropped WarningCode = "services_dropped"
)

// Warning предупреждение об автоматически сброшенном выборе
type Warning struct {
	Code     WarningCode
	Subjects []string // имена сброшенного сотрудника или услуг
}

// Selection текущий выбор пользователя
type Selection struct {
	Services []domain.Service
	Staff    *domain.StaffMember
}

// IsEligible проверяет, что сотрудник выполняет все услуги
// Пустой список назначенных услуг означает "выполняет все"
func IsEligible(staff *domain.StaffMember, services []domain.Service) bool {
	if staff == nil || staff.HandlesAllServices() {
		return true
	}
	for _, service := range services {
		if !staff.CanPerform(service.Name) {
			return false
		}
	}
	return true
}

// EligibleStaff возвращает активных сотрудников, которые могут выполнить все услуги
// Пустой результат не ошибка: бронирование возможно без сотрудника
func EligibleStaff(staff []domain.StaffMember, services []domain.Service) []domain.StaffMember {
	result := make([]domain.StaffMember, 0, len(staff))
	for i := range staff {
		if staff[i].IsActive && IsEligible(&staff[i], services) {
			result = append(result, staff[i])
		}
	}
	return result
}

// ServiceSelectable проверяет, можно ли выбрать услугу при уже выбранном сотруднике
func ServiceSelectable(staff *domain.StaffMember, service domain.Service) bool {
	return staff == nil || staff.CanPerform(service.Name)
}

// Reconcile приводит выбор к согласованному состоянию после изменения change
//
// Правило приоритета: последнее изменение пользователя сохраняется,
// несовместимый предыдущий выбор сбрасывается с предупреждением.
// - изменены услуги → несовместимый сотрудник сбрасывается
// - изменен сотрудник → услуги, которые он не выполняет, сбрасываются
// Неактивный сотрудник сбрасывается всегда.
func Reconcile(sel Selection, change Change) (Selection, []Warning) {
	warnings := make([]Warning, 0)

	if sel.Staff == nil {
		return sel, warnings
	}

	if !sel.Staff.IsActive {
		warnings = append(warnings, Warning{Code: WarningStaffInactive, Subjects: []string{sel.Staff.Name}})
		return Selection{Services: sel.Services}, warnings
	}

	if IsEligible(sel.Staff, sel.Services) {
		return sel, warnings
	}

	if change == ChangeStaff {
		kept := make([]domain.Service, 0, len(sel.Services))
		dropped := make([]string, 0)
		for _, service := range sel.Services {
			if sel.Staff.CanPerform(service.Name) {
				kept = append(kept, service)
			} else {
				dropped = append(dropped, service.Name)
			}
		}
		warnings = append(warnings, Warning{Code: WarningServicesDropped, Subjects: dropped})
		return Selection{Services: kept, Staff: sel.Staff}, warnings
	}

	warnings = append(warnings, Warning{Code: WarningStaffIncompatible, Subjects: []string{sel.Staff.Name}})
	return Selection{Services: sel.Services}, warnings
}
