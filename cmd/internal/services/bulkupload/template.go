package bulkupload

// Шаблоны отдаются как есть и должны проходить разбор и валидацию без ошибок.
const csvTemplate = `category_name,rubric,question_text,options,option1_label,option1_points,option2_label,option2_points,option3_label,option3_points
Backend API,"[{""min"":3,""max"":4,""storyPoints"":1},{""min"":5,""max"":6,""storyPoints"":3},{""min"":7,""max"":9,""storyPoints"":5}]",How many endpoints are affected?,,One,1,Two or three,2,More than three,3
Backend API,,Does the change touch the database schema?,,No,1,New columns,2,New tables or migrations of existing data,3
Backend API,,How well is the area covered by tests?,"[{""label"":""Well covered"",""points"":1},{""label"":""Partially"",""points"":2},{""label"":""Not covered"",""points"":3}]",,,,,,
Frontend UI,,,,,,,,,
`

const jsonTemplate = `[
  {
    "name": "Backend API",
    "rubric": [
      {"min": 3, "max": 4, "storyPoints": 1},
      {"min": 5, "max": 6, "storyPoints": 3},
      {"min": 7, "max": 9, "storyPoints": 5}
    ],
    "questions": [
      {
        "text": "How many endpoints are affected?",
        "options": [
          {"label": "One", "points": 1},
          {"label": "Two or three", "points": 2},
          {"label": "More than three", "points": 3}
        ]
      },
      {
        "text": "Does the change touch the database schema?",
        "options": [
          {"label": "No", "points": 1},
          {"label": "New columns", "points": 2},
          {"label": "New tables or migrations of existing data", "points": 3}
        ]
      }
    ]
  },
  {
    "name": "Frontend UI"
  }
]
`

// Template возвращает пример файла, имя для Content-Disposition и MIME-тип.
// Любой формат, кроме json, трактуется как csv.
func Template(format Format) (content []byte, filename string, contentType string) {
	if format == FormatJSON {
		return []byte(jsonTemplate), "bulk-upload-template.json", "application/json"
	}
	return []byte(csvTemplate), "bulk-upload-template.csv", "text/csv"
}
