package get_eligible_staff

// Request модель запроса списка сотрудников для выбранных услуг
type Request struct {
	BusinessID   int64
	ServiceNames []string // пустой список - все активные сотрудники
}

// Response модель ответа
// Пустой список не ошибка: запись возможна без выбора сотрудника
type Response struct {
	BusinessID int64
	Staff      []StaffOption
}

// StaffOption сотрудник, доступный для выбора
type StaffOption struct {
	Name           string
	HandlesAll     bool     // выполняет все услуги бизнеса
	ServiceNames   []string // назначенные услуги (пусто при HandlesAll)
	HasOwnSchedule bool     // у сотрудника свое расписание
}
