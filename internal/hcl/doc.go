// Package hcl loads patch files written in HCL into the format-agnostic
// config.Patch model.
//
//	node "oscillator" "osc" {
//	  inputs {
//	    enabled = true
//	    freq    = 220
//	  }
//	}
//
//	wire {
//	  from = "osc.signal"
//	  to   = "out.signal"
//	}
package hcl
