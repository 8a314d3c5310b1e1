package get_eligible_staff

import (
	getEligibleStaff "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_eligible_staff"
)

// EligibleStaffResponse HTTP response model
type EligibleStaffResponse struct {
	BusinessID int64         `json:"businessId"`
	Staff      []StaffOption `json:"staff"`
}

// StaffOption сотрудник, которого можно выбрать
type StaffOption struct {
	Name           string   `json:"name"`
	HandlesAll     bool     `json:"handlesAllServices"`
	ServiceNames   []string `json:"assignedServices"`
	HasOwnSchedule bool     `json:"hasOwnSchedule"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEligibleStaff.Response) *EligibleStaffResponse {
	staff := make([]StaffOption, 0, len(resp.Staff))
	for _, s := range resp.Staff {
		services := s.ServiceNames
		if services == nil {
			services = []string{}
		}
		staff = append(staff, StaffOption{
			Name:           s.Name,
			HandlesAll:     s.HandlesAll,
			ServiceNames:   services,
			HasOwnSchedule: s.HasOwnSchedule,
		})
	}

	return &EligibleStaffResponse{
		BusinessID: resp.BusinessID,
		Staff:      staff,
	}
}
