package services

// Services defined in this package:
// - StudentService: create, delete, list, search and summarize student records
