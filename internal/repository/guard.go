package repository

import "errors"

// ErrVersionConflict se devuelve cuando el write guard está activo y el
// documento cambió entre la lectura y el ReplaceOne.
var ErrVersionConflict = errors.New("document version conflict")

// writeGuard controla el chequeo opcional de versión por documento.
// Apagado por defecto: los saves son last-writer-wins. Se activa una
// sola vez desde main con WRITE_GUARD=true.
var writeGuard bool

func EnableWriteGuard() { writeGuard = true }
