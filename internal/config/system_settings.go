package config

import (
	"os"
	"strconv"
)

const DATABASE_TYPE = "RMS_DATABASE_TYPE"
const DATABASE_URL = "RMS_DATABASE_URL"
const DATABASE_SQLLITE_FILE_NAME = "RMS_DATABASE_SQLLITE_FILE_NAME"
const SESSION_EXPIRY_HOURS = "RMS_SESSION_EXPIRY_HOURS"
const SESSION_JWT_SECRET = "RMS_SESSION_JWT_SECRET"
const PAYMENT_COMPLETE_AFTER = "RMS_PAYMENT_COMPLETE_AFTER"             //simulated gateway delay before a processing payment completes
const PAYMENT_STUCK_SWEEP_INTERVAL = "RMS_PAYMENT_STUCK_SWEEP_INTERVAL" //how often the sweeper re-arms processing payments left without a timer

const DATABASE_TYPE_POSTGRES = "POSTGRES"
const DATABASE_TYPE_MYSQL = "MYSQL"
const DATABASE_TYPE_SQLLITE = "SQLLITE"

func GetSystemSettingInteger(settingKey string) int {
	val := GetSystemSettingString(settingKey)
	if val != "" {
		intValue, _ := strconv.Atoi(val)
		return intValue
	}
	return 0
}

func GetSystemSettingString(settingKey string) string {
	val := os.Getenv(settingKey)
	if val != "" {
		return val
	}
	if settingKey == SESSION_EXPIRY_HOURS {
		return "1" // default to 1 hour
	}
	if settingKey == SESSION_JWT_SECRET {
		return "dev-only-secret" // override outside local runs
	}
	if settingKey == PAYMENT_COMPLETE_AFTER {
		return "3s" // the payment gateway mock completes after 3 seconds
	}
	if settingKey == PAYMENT_STUCK_SWEEP_INTERVAL {
		return "60s"
	}
	if settingKey == DATABASE_SQLLITE_FILE_NAME {
		return "./reqman.db"
	}
	return ""
}
