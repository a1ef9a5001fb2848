package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Lebar maksimum gambar sangga setelah resize.
const maxImageWidth = 1024

type ImageMeta struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	SizeBytes int    `json:"size_bytes"`
}

// ConvertImageToWebp membaca file upload (jpeg/png/webp), resize bila lebih
// lebar dari maxImageWidth, lalu encode ulang sebagai webp.
func ConvertImageToWebp(fileHeader *multipart.FileHeader) ([]byte, ImageMeta, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, ImageMeta{}, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, ImageMeta{}, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, ImageMeta{}, fmt.Errorf("gagal encode webp: %w", err)
	}

	meta := ImageMeta{
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
		Format:    "webp",
		SizeBytes: buf.Len(),
	}
	return buf.Bytes(), meta, nil
}

// UploadImageToStorage mengunggah hasil konversi ke Supabase storage dan
// mengembalikan public URL-nya.
func UploadImageToStorage(folder, originalFilename string, data []byte) (string, error) {
	filename := GenerateUniqueFilename(folder, originalFilename)
	if err := uploadToSupabase("image", filename, "image/webp", data); err != nil {
		return "", fmt.Errorf("upload gambar gagal: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func uploadToSupabase(bucket, filename, contentType string, data []byte) error {
	supabaseURL := os.Getenv("SUPABASE_PROJECT_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("konfigurasi Supabase belum lengkap")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, url.PathEscape(filename))
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage menolak upload (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
