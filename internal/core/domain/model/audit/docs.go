// Package audit models the append-only trail of field-level changes.
//
// A Record is created once per accepted transition or field edit and is never
// modified or deleted afterwards. Each Record keeps its Changes in the order the
// aggregate emitted them.
package audit
