package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"

	"github.com/minio/minio-go/v7"

	"pawhaven_back_end/internal/database"
)

// UploadImage envoie une image (animal ou produit) dans le bucket MinIO
// et retourne son URL publique. folder vaut "pets" ou "products".
func UploadImage(folder string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := path.Join(folder, file.Filename)

	_, err = database.MinIO.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return url, nil
}
