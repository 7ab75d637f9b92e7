// Package env reads process environment variables and .env files.
//
// A .env file is parsed with godotenv. Exported values never replace a
// variable that is already set in the process environment.
package env
