// Package data holds the sample records the select demos list and the
// providers that supply them.
//
// The built-in providers, DepartmentData and TeamData, return fixed lists.
// LoadFile reads replacement lists from an HCL file:
//
//	department "Product" {}
//	department "Service" {}
//
//	team "Flow" {}
//	team "Developers Journey and Onboarding" {}
package data
