package render

import "errors"

var (
	// ErrRender возвращается при ошибке исполнения шаблона
	ErrRender = errors.New("render: failed to execute template")
)
