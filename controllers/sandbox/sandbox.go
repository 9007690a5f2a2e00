package sandboxController

import (
	"strings"

	"skillport/middleware"
	"skillport/utils"

	"github.com/gofiber/fiber/v2"
)

// sandboxAttributes is the exact permission set the viewer's preview
// iframe runs with. Scripts and alert/confirm/prompt work; same-origin
// access, forms, popups and navigation stay blocked.
const sandboxAttributes = "allow-scripts allow-modals"

const previewShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body>
%CODE%
</body>
</html>`

// buildPreviewDocument wraps user code into a full document unless it
// already is one.
func buildPreviewDocument(code string) string {
	trimmed := strings.TrimSpace(code)
	lowered := strings.ToLower(trimmed)
	if strings.HasPrefix(lowered, "<!doctype") || strings.HasPrefix(lowered, "<html") {
		return trimmed
	}
	return strings.Replace(previewShell, "%CODE%", code, 1)
}

// PreviewHTML returns the document the live-code pane should load into
// its sandboxed iframe, together with the sandbox attribute value the
// client must use verbatim.
func PreviewHTML(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPreview").(*struct {
		Code string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preview built.", fiber.Map{
		"document": buildPreviewDocument(reqData.Code),
		"sandbox":  sandboxAttributes,
	})
}

// RunPython executes Python lesson code through the hosted interpreter
// and returns its combined output.
func RunPython(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRun").(*struct {
		Code  string `json:"code"`
		Stdin string `json:"stdin"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := utils.RunPythonCode(c.Context(), reqData.Code, reqData.Stdin)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Code execution service unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code executed.", fiber.Map{
		"stdout":    result.Stdout,
		"stderr":    result.Stderr,
		"output":    result.Output,
		"exit_code": result.ExitCode,
	})
}
