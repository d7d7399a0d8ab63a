// Package integration_tests drives whole patches through the application,
// from patch files on disk to the commands the audio host would receive.
package integration_tests
