package schedule

import "github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
