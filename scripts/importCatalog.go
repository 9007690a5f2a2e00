package main

import (
	"encoding/json"
	"log"
	"os"

	"skillport/config"
	"skillport/database"
	courseModels "skillport/models/course"
	"skillport/utils"

	"gorm.io/datatypes"
)

// catalogFile mirrors the structure of catalog.json: the full course
// catalog with modules, lessons, assignments and projects.
type catalogFile struct {
	Courses []struct {
		Key              string   `json:"key"`
		Aliases          []string `json:"aliases"`
		Title            string   `json:"title"`
		Description      string   `json:"description"`
		Category         string   `json:"category"`
		Author           string   `json:"author"`
		Duration         int64    `json:"duration"`
		PriceAmount      float64  `json:"priceAmount"`
		Currency         string   `json:"currency"`
		ViewerRoute      string   `json:"viewerRoute"`
		ReferralEligible *bool    `json:"referralEligible"` // omitted means eligible
		IsPublished      bool     `json:"isPublished"`
		Modules          []struct {
			Key         string   `json:"key"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Duration    string   `json:"duration"`
			VideoLinks  []string `json:"videoLinks"`
			Lessons     []struct {
				Title            string           `json:"title"`
				Duration         string           `json:"duration"`
				VideoURL         string           `json:"videoUrl"`
				Language         string           `json:"language"`
				Body             []map[string]any `json:"body"`
				SyntaxRefs       []map[string]any `json:"syntaxRefs"`
				TerminalCommands []string         `json:"terminalCommands"`
				LiveCodeTemplate string           `json:"liveCodeTemplate"`
			} `json:"lessons"`
		} `json:"modules"`
		Assignments []struct {
			ModuleKey string `json:"moduleKey"`
			Title     string `json:"title"`
			Brief     string `json:"brief"`
			DueDay    int    `json:"dueDay"`
		} `json:"assignments"`
		Projects []struct {
			Title        string   `json:"title"`
			Brief        string   `json:"brief"`
			Requirements []string `json:"requirements"`
		} `json:"projects"`
	} `json:"courses"`
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := config.AppConfig.CatalogFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to open catalog file: %v", err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		log.Fatalf("Failed to parse catalog: %v", err)
	}

	log.Printf("Courses to import: %d", len(catalog.Courses))

	db := database.Database.Db
	inserted := 0
	skipped := 0

	for _, entry := range catalog.Courses {
		key := utils.NormalizeCourseKey(entry.Key)

		var existing courseModels.Course
		if err := db.Where("key = ? AND is_deleted = ?", key, false).First(&existing).Error; err == nil {
			log.Printf("Skipping %s: already imported", key)
			skipped++
			continue
		}

		currency := entry.Currency
		if currency == "" {
			currency = "BDT"
		}
		viewerRoute := entry.ViewerRoute
		if viewerRoute == "" {
			viewerRoute = "/courses/" + key
		}
		referralEligible := true
		if entry.ReferralEligible != nil {
			referralEligible = *entry.ReferralEligible
		}

		course := courseModels.Course{
			Key:              key,
			Title:            entry.Title,
			Description:      entry.Description,
			Category:         entry.Category,
			Author:           entry.Author,
			Duration:         entry.Duration,
			PriceAmount:      entry.PriceAmount,
			Currency:         currency,
			ViewerRoute:      viewerRoute,
			ReferralEligible: referralEligible,
			IsPublished:      entry.IsPublished,
		}

		tx := db.Begin()
		if err := tx.Create(&course).Error; err != nil {
			tx.Rollback()
			log.Fatalf("Failed to import course %s: %v", key, err)
		}

		for _, alias := range entry.Aliases {
			normalized := utils.NormalizeCourseKey(alias)
			if normalized == key {
				continue
			}
			if err := tx.Create(&courseModels.CourseAlias{Alias: normalized, CourseID: course.ID}).Error; err != nil {
				tx.Rollback()
				log.Fatalf("Failed to import alias %s for %s: %v", normalized, key, err)
			}
		}

		moduleIDs := make(map[string]uint)
		for moduleIdx, moduleEntry := range entry.Modules {
			module := courseModels.Module{
				CourseID:    course.ID,
				Key:         utils.NormalizeCourseKey(moduleEntry.Key),
				Title:       moduleEntry.Title,
				Description: moduleEntry.Description,
				Duration:    moduleEntry.Duration,
				OrderIndex:  moduleIdx,
				VideoLinks:  toJSON(moduleEntry.VideoLinks),
			}
			if err := tx.Create(&module).Error; err != nil {
				tx.Rollback()
				log.Fatalf("Failed to import module %s of %s: %v", module.Key, key, err)
			}
			moduleIDs[module.Key] = module.ID

			for lessonIdx, lessonEntry := range moduleEntry.Lessons {
				language := lessonEntry.Language
				if language == "" {
					language = courseModels.LessonLanguageHTML
				}
				lesson := courseModels.Lesson{
					CourseID:         course.ID,
					ModuleID:         module.ID,
					OrderIndex:       lessonIdx,
					Title:            lessonEntry.Title,
					Duration:         lessonEntry.Duration,
					VideoURL:         lessonEntry.VideoURL,
					Language:         language,
					Body:             toJSON(lessonEntry.Body),
					SyntaxRefs:       toJSON(lessonEntry.SyntaxRefs),
					TerminalCommands: toJSON(lessonEntry.TerminalCommands),
					LiveCodeTemplate: lessonEntry.LiveCodeTemplate,
					IsPublished:      true,
				}
				if err := tx.Create(&lesson).Error; err != nil {
					tx.Rollback()
					log.Fatalf("Failed to import lesson %d of %s/%s: %v", lessonIdx, key, module.Key, err)
				}
			}
		}

		for assignmentIdx, assignmentEntry := range entry.Assignments {
			assignment := courseModels.Assignment{
				CourseID:   course.ID,
				ModuleID:   moduleIDs[utils.NormalizeCourseKey(assignmentEntry.ModuleKey)],
				Title:      assignmentEntry.Title,
				Brief:      assignmentEntry.Brief,
				DueDay:     assignmentEntry.DueDay,
				OrderIndex: assignmentIdx,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				tx.Rollback()
				log.Fatalf("Failed to import assignment %d of %s: %v", assignmentIdx, key, err)
			}
		}

		for projectIdx, projectEntry := range entry.Projects {
			project := courseModels.Project{
				CourseID:     course.ID,
				Title:        projectEntry.Title,
				Brief:        projectEntry.Brief,
				Requirements: toJSON(projectEntry.Requirements),
				OrderIndex:   projectIdx,
			}
			if err := tx.Create(&project).Error; err != nil {
				tx.Rollback()
				log.Fatalf("Failed to import project %d of %s: %v", projectIdx, key, err)
			}
		}

		tx.Commit()
		inserted++
		log.Printf("Imported %s (%d modules)", key, len(entry.Modules))
	}

	log.Printf("Import complete: %d inserted, %d skipped", inserted, skipped)
}
