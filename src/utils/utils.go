package utils

import (
	"io"
	"mime/multipart"
	"net/http"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/tunde1256/flashcard/src/core/database"
)

// UploadToStorage uploads a file to object storage and returns the
// file's path, public URL, and content type.
func UploadToStorage(file *multipart.FileHeader, path string) (string, string, string, error) {
	storageClient, bucketName, err := database.Storage()
	if err != nil {
		return "", "", "", err
	}

	fileBody, err := file.Open()
	if err != nil {
		return "", "", "", err
	}
	defer fileBody.Close()

	fileBytes, err := io.ReadAll(fileBody)
	if err != nil {
		return "", "", "", err
	}

	// Reset the file pointer after sniffing the content type.
	if _, err := fileBody.Seek(0, io.SeekStart); err != nil {
		return "", "", "", err
	}
	contentType := http.DetectContentType(fileBytes)

	_, err = storageClient.UploadFile(bucketName, path, fileBody, storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", "", "", err
	}

	response := storageClient.GetPublicUrl(bucketName, path)
	return path, response.SignedURL, contentType, nil
}

// DeleteFromStorage deletes a file from object storage given the file path.
func DeleteFromStorage(path string) error {
	storageClient, bucketName, err := database.Storage()
	if err != nil {
		return err
	}

	_, err = storageClient.RemoveFile(bucketName, []string{path})
	return err
}
