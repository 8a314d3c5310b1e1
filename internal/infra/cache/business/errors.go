package business

import "errors"

var (
	// ErrCacheMiss возвращается, когда карточки бизнеса нет в кэше
	ErrCacheMiss = errors.New("business.cache: cache miss")

	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("business.cache: redis error")

	// ErrCodec возвращается при ошибке сериализации снимка
	ErrCodec = errors.New("business.cache: codec error")
)
