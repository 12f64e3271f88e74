package services

import "budget/internal/logger"

func init() {
	logger.Init("test")
}
