// Package config decodes the conveyor HCL configuration file.
//
// Example:
//
//	input          = "${env.CONVEYOR_HOME}/denver.txt"
//	claim_junction = "BaggageClaim"
//	arrival_tag    = "ARRIVAL"
//	workers        = 4
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	server {
//	  listen = ":8080"
//	}
//
// Environment variables are available to expressions as env.NAME. Every
// field is optional; missing fields keep the values of Default.
package config
