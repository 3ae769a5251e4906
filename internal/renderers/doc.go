// Package renderers provides implementations of the Renderer interface.
// Each renderer serialises question records into one output format.
//
// Renderers are registered with the Registry at startup.
package renderers
