package controllers

import (
	"encoding/json"
	"fmt"

	"skillport/database"
	"skillport/middleware"
	courseModels "skillport/models/course"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateModule appends a module to a course. The module key is
// derived from its position ("module-1", "module-2", ...) unless given.
func AdminCreateModule(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Key         string   `json:"key"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Duration    string   `json:"duration"`
		VideoLinks  []string `json:"videoLinks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var count int64
	db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)

	key := reqData.Key
	if key == "" {
		key = fmt.Sprintf("module-%d", count+1)
	}
	key = utils.NormalizeCourseKey(key)

	if err := db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, key, false).First(&courseModels.Module{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module key already exists in this course!", nil)
	}

	var videoLinks datatypes.JSON
	if len(reqData.VideoLinks) > 0 {
		raw, _ := json.Marshal(reqData.VideoLinks)
		videoLinks = datatypes.JSON(raw)
	}

	module := courseModels.Module{
		CourseID:    course.ID,
		Key:         key,
		Title:       reqData.Title,
		Description: reqData.Description,
		Duration:    reqData.Duration,
		OrderIndex:  int(count),
		VideoLinks:  videoLinks,
	}

	if err := db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates module fields.
func AdminUpdateModule(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND key = ? AND is_deleted = ?", course.ID, c.Params("moduleKey"), false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Duration    *string  `json:"duration"`
		VideoLinks  []string `json:"videoLinks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Description != nil {
		module.Description = *reqData.Description
	}
	if reqData.Duration != nil {
		module.Duration = *reqData.Duration
	}
	if reqData.VideoLinks != nil {
		raw, _ := json.Marshal(reqData.VideoLinks)
		module.VideoLinks = datatypes.JSON(raw)
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminReorderModules rewrites the order of a course's modules. The
// request must list every live module key exactly once, keeping order
// indices dense.
func AdminReorderModules(c *fiber.Ctx) error {
	course, err := utils.ResolveCourseKey(c.Params("key"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := new(struct {
		ModuleKeys []string `json:"moduleKeys"`
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.ModuleKeys) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module key list is required!", nil)
	}

	db := database.Database.Db

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Find(&modules)

	if len(modules) != len(reqData.ModuleKeys) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module key list must cover every module exactly once!", nil)
	}

	byKey := make(map[string]*courseModels.Module, len(modules))
	for i := range modules {
		byKey[modules[i].Key] = &modules[i]
	}

	tx := db.Begin()
	for i, key := range reqData.ModuleKeys {
		module, ok := byKey[key]
		if !ok {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown or duplicate module key: "+key, nil)
		}
		// Consume the key so a duplicate in the list cannot pass the
		// length check while another module keeps a stale index.
		delete(byKey, key)
		module.OrderIndex = i
		if err := tx.Save(module).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder modules!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules reordered successfully!", nil)
}
