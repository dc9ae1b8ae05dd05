// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-dict-keeper/internal/service"
)

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return msgServerUnavailable
	case errors.Is(err, service.ErrMalformedResponse):
		return "Сервер вернул некорректный ответ"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Сервер отклонил запрос"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
