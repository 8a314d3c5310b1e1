package config

import (
	"time"
	// База часовых поясов встраивается в бинарник, контейнер может не содержать /usr/share/zoneinfo
	_ "time/tzdata"
)

// Location возвращает часовой пояс расчета "сейчас"
func (e EngineConfig) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(e.Timezone)
}
