package main

// General API documentation for swaggo. Run `swag init -g cmd/datapipe/docs.go` to generate docs.
//
// @title           datapipe control API
// @version         1.0
// @description     Start, stop and inspect a simulated data pipe.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
