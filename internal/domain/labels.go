package domain

import "fmt"

const genericLabel = "Файл"

var friendlyNames = map[string]string{
	".jpg":  "Фото JPEG",
	".jpeg": "Фото JPEG",
	".png":  "Изображение PNG",
	".gif":  "Изображение GIF",
	".bmp":  "Изображение BMP",
	".heic": "Фото HEIC",
	".tif":  "Изображение TIFF",
	".tiff": "Изображение TIFF",
	".mp3":  "Аудио MP3",
	".flac": "Аудио FLAC",
	".wav":  "Аудио WAV",
	".aac":  "Аудио AAC",
	".ogg":  "Аудио OGG",
	".wma":  "Аудио WMA",
	".mp4":  "Видео MP4",
	".mov":  "Видео MOV",
	".avi":  "Видео AVI",
	".mkv":  "Видео MKV",
	".doc":  "Документ Word",
	".docx": "Документ Word",
	".xls":  "Таблица Excel",
	".xlsx": "Таблица Excel",
	".xlsm": "Таблица Excel",
	".ppt":  "Презентация PowerPoint",
	".pptx": "Презентация PowerPoint",
	".pdf":  "PDF документ",
	".txt":  "Текстовый файл",
	".rtf":  "Текстовый файл",
	".csv":  "CSV файл",
	".zip":  "Архив ZIP",
	".rar":  "Архив RAR",
	".7z":   "Архив 7z",
}

// FriendlyName looks up the human readable name of an extension.
func FriendlyName(ext string) (string, bool) {
	name, ok := friendlyNames[NormalizeExtension(ext)]
	return name, ok
}

// Label formats the display label, e.g. "Фото JPEG (.jpg)" or "Файл (.xyz)".
func Label(ext string) string {
	norm := NormalizeExtension(ext)
	if name, ok := FriendlyName(norm); ok {
		return fmt.Sprintf("%s (%s)", name, norm)
	}
	return fmt.Sprintf("%s (%s)", genericLabel, norm)
}
