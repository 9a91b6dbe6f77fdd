package utils

import (
	"hce-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return constvars.REQUEST_ID_PREFIX + id
}

func GenerateSessionID() string {
	return uuid.New().String()
}
