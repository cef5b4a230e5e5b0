package i18n

var catalogs = map[Locale]map[Key]string{
	English: {
		KeyAppName:          "Jetistik Hub",
		KeyLogin:            "Log in",
		KeyLogout:           "Log out",
		KeyRegister:         "Register",
		KeyUsername:         "Username",
		KeyPassword:         "Password",
		KeyConfirmPassword:  "Confirm password",
		KeyFullName:         "Full name",
		KeySchool:           "School",
		KeySubject:          "Subject",
		KeyCategory:         "Category",
		KeyExperience:       "Years of experience",
		KeyCabinet:          "My cabinet",
		KeyModeration:       "Moderation",
		KeyUsers:            "Users",
		KeyAddAchievement:   "Add achievement",
		KeyTitle:            "Title",
		KeyDescription:      "Description",
		KeyType:             "Type",
		KeyStudentName:      "Student name",
		KeyLevel:            "Level",
		KeyPlace:            "Place",
		KeyFile:             "File",
		KeyPoints:           "Points",
		KeyTotalPoints:      "Total points",
		KeyStatus:           "Status",
		KeySubmit:           "Submit",
		KeyApprove:          "Approve",
		KeyReject:           "Reject",
		KeyDelete:           "Delete",
		KeyDownload:         "Download",
		KeyCreateUser:       "Create user",
		KeyIsAdmin:          "Administrator",
		KeyNoAchievements:   "No achievements yet",
		KeyOwner:            "Owner",
		KeyCreatedAt:        "Submitted",
		KeyErrorTitle:       "Something went wrong",
		KeyBack:             "Back",
		KeyAchievementAdded: "Achievement submitted for moderation",
		KeyUserCreated:      "User created",
		KeyUserDeleted:      "User deleted",

		KeyTypeStudent:        "Student achievement",
		KeyTypeTeacher:        "Teacher achievement",
		KeyTypeSocial:         "Social activity",
		KeyTypeEducational:    "Educational work",
		KeyLevelCity:          "City",
		KeyLevelRegional:      "Regional",
		KeyLevelNational:      "National",
		KeyLevelInternational: "International",
		KeyPlace1:             "1st place",
		KeyPlace2:             "2nd place",
		KeyPlace3:             "3rd place",
		KeyPlaceCertificate:   "Certificate of participation",
		KeyStatusPending:      "Pending",
		KeyStatusApproved:     "Approved",
		KeyStatusRejected:     "Rejected",
		KeyStatusAll:          "All",

		KeyErrInvalidCredentials: "Wrong username or password",
		KeyErrUsernameTaken:      "This username is already taken",
		KeyErrPasswordMismatch:   "Passwords do not match",
		KeyErrPasswordTooShort:   "Password is too short",
		KeyErrInvalidInput:       "Please check the form fields",
		KeyErrUnsupportedFile:    "Allowed files: pdf, jpg, jpeg, png, doc, docx, xlsx",
		KeyErrFileTooLarge:       "File must not exceed 5 MB",
		KeyErrEmptyFile:          "The file is empty",
		KeyErrUnauthorized:       "Please log in first",
		KeyErrForbidden:          "You do not have permission to do this",
		KeyErrNotFound:           "Not found",
		KeyErrNoAttachment:       "No file is attached to this achievement",
		KeyErrFileMissing:        "The file is no longer available",
		KeyErrInternal:           "Internal server error",
		KeyErrRegistrationClosed: "Registration is closed",
		KeyErrUsernameRequired:   "Username is required",
		KeyErrCannotDeleteSelf:   "You cannot delete your own account",
	},
	Russian: {
		KeyAppName:          "Jetistik Hub",
		KeyLogin:            "Войти",
		KeyLogout:           "Выйти",
		KeyRegister:         "Регистрация",
		KeyUsername:         "Логин",
		KeyPassword:         "Пароль",
		KeyConfirmPassword:  "Повторите пароль",
		KeyFullName:         "ФИО",
		KeySchool:           "Школа",
		KeySubject:          "Предмет",
		KeyCategory:         "Категория",
		KeyExperience:       "Стаж (лет)",
		KeyCabinet:          "Личный кабинет",
		KeyModeration:       "Модерация",
		KeyUsers:            "Пользователи",
		KeyAddAchievement:   "Добавить достижение",
		KeyTitle:            "Название",
		KeyDescription:      "Описание",
		KeyType:             "Тип",
		KeyStudentName:      "ФИО ученика",
		KeyLevel:            "Уровень",
		KeyPlace:            "Место",
		KeyFile:             "Файл",
		KeyPoints:           "Баллы",
		KeyTotalPoints:      "Всего баллов",
		KeyStatus:           "Статус",
		KeySubmit:           "Отправить",
		KeyApprove:          "Одобрить",
		KeyReject:           "Отклонить",
		KeyDelete:           "Удалить",
		KeyDownload:         "Скачать",
		KeyCreateUser:       "Создать пользователя",
		KeyIsAdmin:          "Администратор",
		KeyNoAchievements:   "Достижений пока нет",
		KeyOwner:            "Автор",
		KeyCreatedAt:        "Дата подачи",
		KeyErrorTitle:       "Произошла ошибка",
		KeyBack:             "Назад",
		KeyAchievementAdded: "Достижение отправлено на модерацию",
		KeyUserCreated:      "Пользователь создан",
		KeyUserDeleted:      "Пользователь удалён",

		KeyTypeStudent:        "Достижение ученика",
		KeyTypeTeacher:        "Достижение учителя",
		KeyTypeSocial:         "Общественная деятельность",
		KeyTypeEducational:    "Методическая работа",
		KeyLevelCity:          "Городской",
		KeyLevelRegional:      "Областной",
		KeyLevelNational:      "Республиканский",
		KeyLevelInternational: "Международный",
		KeyPlace1:             "1 место",
		KeyPlace2:             "2 место",
		KeyPlace3:             "3 место",
		KeyPlaceCertificate:   "Сертификат участника",
		KeyStatusPending:      "На проверке",
		KeyStatusApproved:     "Одобрено",
		KeyStatusRejected:     "Отклонено",
		KeyStatusAll:          "Все",

		KeyErrInvalidCredentials: "Неверный логин или пароль",
		KeyErrUsernameTaken:      "Такой логин уже занят",
		KeyErrPasswordMismatch:   "Пароли не совпадают",
		KeyErrPasswordTooShort:   "Пароль слишком короткий",
		KeyErrInvalidInput:       "Проверьте поля формы",
		KeyErrUnsupportedFile:    "Допустимые файлы: pdf, jpg, jpeg, png, doc, docx, xlsx",
		KeyErrFileTooLarge:       "Файл не должен превышать 5 МБ",
		KeyErrEmptyFile:          "Файл пустой",
		KeyErrUnauthorized:       "Сначала войдите в систему",
		KeyErrForbidden:          "Недостаточно прав",
		KeyErrNotFound:           "Не найдено",
		KeyErrNoAttachment:       "К этому достижению не прикреплён файл",
		KeyErrFileMissing:        "Файл больше недоступен",
		KeyErrInternal:           "Внутренняя ошибка сервера",
		KeyErrRegistrationClosed: "Регистрация закрыта",
		KeyErrUsernameRequired:   "Укажите логин",
		KeyErrCannotDeleteSelf:   "Нельзя удалить собственную учётную запись",
	},
	Kazakh: {
		KeyAppName:          "Jetistik Hub",
		KeyLogin:            "Кіру",
		KeyLogout:           "Шығу",
		KeyRegister:         "Тіркелу",
		KeyUsername:         "Логин",
		KeyPassword:         "Құпиясөз",
		KeyConfirmPassword:  "Құпиясөзді қайталаңыз",
		KeyFullName:         "Аты-жөні",
		KeySchool:           "Мектеп",
		KeySubject:          "Пән",
		KeyCategory:         "Санат",
		KeyExperience:       "Еңбек өтілі (жыл)",
		KeyCabinet:          "Жеке кабинет",
		KeyModeration:       "Модерация",
		KeyUsers:            "Пайдаланушылар",
		KeyAddAchievement:   "Жетістік қосу",
		KeyTitle:            "Атауы",
		KeyDescription:      "Сипаттамасы",
		KeyType:             "Түрі",
		KeyStudentName:      "Оқушының аты-жөні",
		KeyLevel:            "Деңгейі",
		KeyPlace:            "Орын",
		KeyFile:             "Файл",
		KeyPoints:           "Ұпай",
		KeyTotalPoints:      "Жалпы ұпай",
		KeyStatus:           "Мәртебесі",
		KeySubmit:           "Жіберу",
		KeyApprove:          "Бекіту",
		KeyReject:           "Қабылдамау",
		KeyDelete:           "Жою",
		KeyDownload:         "Жүктеу",
		KeyCreateUser:       "Пайдаланушы құру",
		KeyIsAdmin:          "Әкімші",
		KeyNoAchievements:   "Әзірге жетістіктер жоқ",
		KeyOwner:            "Авторы",
		KeyCreatedAt:        "Жіберілген күні",
		KeyErrorTitle:       "Қате орын алды",
		KeyBack:             "Артқа",
		KeyAchievementAdded: "Жетістік модерацияға жіберілді",
		KeyUserCreated:      "Пайдаланушы құрылды",
		KeyUserDeleted:      "Пайдаланушы жойылды",

		KeyTypeStudent:        "Оқушы жетістігі",
		KeyTypeTeacher:        "Мұғалім жетістігі",
		KeyTypeSocial:         "Қоғамдық жұмыс",
		KeyTypeEducational:    "Әдістемелік жұмыс",
		KeyLevelCity:          "Қалалық",
		KeyLevelRegional:      "Облыстық",
		KeyLevelNational:      "Республикалық",
		KeyLevelInternational: "Халықаралық",
		KeyPlace1:             "1 орын",
		KeyPlace2:             "2 орын",
		KeyPlace3:             "3 орын",
		KeyPlaceCertificate:   "Қатысушы сертификаты",
		KeyStatusPending:      "Тексерілуде",
		KeyStatusApproved:     "Бекітілді",
		KeyStatusRejected:     "Қабылданбады",
		KeyStatusAll:          "Барлығы",

		KeyErrInvalidCredentials: "Логин немесе құпиясөз қате",
		KeyErrUsernameTaken:      "Бұл логин бос емес",
		KeyErrPasswordMismatch:   "Құпиясөздер сәйкес емес",
		KeyErrPasswordTooShort:   "Құпиясөз тым қысқа",
		KeyErrInvalidInput:       "Форма өрістерін тексеріңіз",
		KeyErrUnsupportedFile:    "Рұқсат етілген файлдар: pdf, jpg, jpeg, png, doc, docx, xlsx",
		KeyErrFileTooLarge:       "Файл 5 МБ-тан аспауы керек",
		KeyErrEmptyFile:          "Файл бос",
		KeyErrUnauthorized:       "Алдымен жүйеге кіріңіз",
		KeyErrForbidden:          "Рұқсат жоқ",
		KeyErrNotFound:           "Табылмады",
		KeyErrNoAttachment:       "Бұл жетістікке файл тіркелмеген",
		KeyErrFileMissing:        "Файл енді қолжетімсіз",
		KeyErrInternal:           "Сервердің ішкі қатесі",
		KeyErrRegistrationClosed: "Тіркелу жабық",
		KeyErrUsernameRequired:   "Логинді енгізіңіз",
		KeyErrCannotDeleteSelf:   "Өз есептік жазбаңызды жою мүмкін емес",
	},
}
