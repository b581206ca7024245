// file: internals/helpers/storage.go
package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"migym_backend/internals/configs"
)

// Almacenamiento local: los documentos y fotos se guardan bajo UPLOAD_DIR
// y la fila en DB referencia la ruta relativa.

var filenameRE = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameRE.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: <folder>/<fecha>-<uuid>-<nombre_seguro>
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// SaveUploadedFile guarda un multipart file en disco y devuelve la ruta relativa.
func SaveUploadedFile(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer src.Close()

	relPath := GenerateUniqueFilename(folder, fileHeader.Filename)
	absPath := filepath.Join(configs.UploadDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("no se pudo crear el archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("no se pudo escribir el archivo: %w", err)
	}
	return relPath, nil
}

// SaveBytes guarda contenido ya procesado (p.ej. imagen convertida a webp).
func SaveBytes(folder, filename string, data []byte) (string, error) {
	relPath := GenerateUniqueFilename(folder, filename)
	absPath := filepath.Join(configs.UploadDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", err
	}
	return relPath, nil
}

// DeleteStoredFile borra un archivo previamente guardado (best effort).
func DeleteStoredFile(relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(configs.UploadDir, relPath))
}

// AbsolutePath resuelve la ruta absoluta de un archivo guardado.
func AbsolutePath(relPath string) string {
	return filepath.Join(configs.UploadDir, relPath)
}
