package locale

type ruName struct {
	first      string
	patronymic string
}

var ruMaleNames = []ruName{
	{"Александр", "Александрович"}, {"Алексей", "Алексеевич"}, {"Андрей", "Андреевич"},
	{"Антон", "Антонович"}, {"Артём", "Артёмович"}, {"Борис", "Борисович"},
	{"Вадим", "Вадимович"}, {"Василий", "Васильевич"}, {"Виктор", "Викторович"},
	{"Владимир", "Владимирович"}, {"Дмитрий", "Дмитриевич"}, {"Евгений", "Евгеньевич"},
	{"Егор", "Егорович"}, {"Иван", "Иванович"}, {"Игорь", "Игоревич"},
	{"Илья", "Ильич"}, {"Кирилл", "Кириллович"}, {"Константин", "Константинович"},
	{"Максим", "Максимович"}, {"Михаил", "Михайлович"}, {"Никита", "Никитич"},
	{"Николай", "Николаевич"}, {"Олег", "Олегович"}, {"Павел", "Павлович"},
	{"Роман", "Романович"}, {"Сергей", "Сергеевич"}, {"Станислав", "Станиславович"},
	{"Тимофей", "Тимофеевич"}, {"Фёдор", "Фёдорович"}, {"Юрий", "Юрьевич"},
}

// patronymics for female names are derived from the same father names
var ruFemalePatronymics = []string{
	"Александровна", "Алексеевна", "Андреевна", "Антоновна", "Борисовна",
	"Вадимовна", "Васильевна", "Викторовна", "Владимировна", "Дмитриевна",
	"Евгеньевна", "Егоровна", "Ивановна", "Игоревна", "Ильинична",
	"Кирилловна", "Константиновна", "Максимовна", "Михайловна", "Николаевна",
	"Олеговна", "Павловна", "Романовна", "Сергеевна", "Юрьевна",
}

var ruFemaleFirstNames = []string{
	"Алина", "Алёна", "Анастасия", "Анна", "Валентина", "Валерия", "Вера",
	"Виктория", "Галина", "Дарья", "Екатерина", "Елена", "Елизавета",
	"Жанна", "Зоя", "Ирина", "Карина", "Ксения", "Лариса", "Любовь",
	"Людмила", "Маргарита", "Марина", "Мария", "Надежда", "Наталья",
	"Оксана", "Ольга", "Полина", "Светлана", "Софья", "Татьяна", "Юлия",
}

// ruSurnames are masculine forms; feminine forms come from feminineSurname.
var ruSurnames = []string{
	"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев", "Петров", "Соколов",
	"Михайлов", "Новиков", "Фёдоров", "Морозов", "Волков", "Алексеев", "Лебедев",
	"Семёнов", "Егоров", "Павлов", "Козлов", "Степанов", "Николаев", "Орлов",
	"Андреев", "Макаров", "Никитин", "Захаров", "Зайцев", "Соловьёв", "Борисов",
	"Яковлев", "Григорьев", "Романов", "Воробьёв", "Сергеев", "Кузьмин", "Фролов",
	"Александров", "Дмитриев", "Королёв", "Гусев", "Киселёв", "Ильин", "Максимов",
	"Поляков", "Сорокин", "Виноградов", "Ковалёв", "Белов", "Медведев", "Антонов",
	"Тарасов", "Жуков", "Баранов", "Филиппов", "Комаров", "Давыдов", "Беляев",
	"Герасимов", "Богданов", "Осипов", "Сидоров", "Матвеев", "Титов", "Марков",
	"Миронов", "Крылов", "Куликов", "Карпов", "Власов", "Мельников", "Денисов",
	"Гаврилов", "Тихонов", "Казаков", "Афанасьев", "Данилов", "Савельев", "Тимофеев",
	"Фомин", "Чернов", "Абрамов", "Мартынов", "Ефимов", "Федотов", "Щербаков",
	"Назаров", "Калинин", "Исаев", "Чернышёв", "Быков", "Маслов", "Родионов",
	"Коновалов", "Лазарев", "Воронин", "Климов", "Филатов", "Пономарёв", "Голубев",
	"Кудрявцев", "Прохоров", "Наумов", "Потапов", "Журавлёв", "Овчинников", "Трофимов",
	"Леонов", "Соболев", "Ермаков", "Колесников", "Гончаров", "Емельянов", "Никифоров",
	"Грачёв", "Котов", "Гришин", "Ефремов", "Архипов", "Громов", "Кириллов",
	"Малышев", "Панов", "Моисеев", "Румянцев", "Акимов", "Кондратьев", "Бирюков",
	"Горбунов", "Анисимов", "Еремин", "Тихомиров", "Галкин", "Лукьянов", "Михеев",
	"Скворцов", "Юдин", "Белоусов", "Нестеров", "Симонов", "Прокофьев", "Харитонов",
	"Князев", "Цветков", "Левин", "Митрофанов", "Воронов", "Аксёнов", "Софронов",
	"Мальцев", "Логинов", "Горшков", "Савин", "Краснов", "Майоров", "Демидов",
	"Елисеев", "Рыбаков", "Сафонов", "Плотников", "Дёмин", "Хохлов", "Фадеев",
	"Молчанов", "Игнатов", "Литвинов", "Ершов", "Ушаков", "Дементьев", "Рябов",
	"Мухин", "Калашников", "Леонтьев", "Лобанов", "Кузин", "Корнеев", "Евдокимов",
	"Бородин", "Платонов", "Некрасов", "Балашов", "Бобров", "Жданов", "Блинов",
	"Игнатьев", "Коротков", "Муравьёв", "Крюков", "Беляков", "Богомолов", "Дроздов",
	"Лавров", "Зуев", "Петухов", "Ларин", "Никулин", "Серов", "Терентьев",
	"Зотов", "Устинов", "Фокин", "Самойлов", "Константинов", "Сахаров", "Шишкин",
	"Самсонов", "Черкасов", "Чистяков", "Носов", "Брагин", "Горелов", "Руднев",
	"Вишневский", "Ковальский", "Белинский", "Островский", "Полянский", "Соколовский",
}

var ruCities = []string{
	"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань",
	"Нижний Новгород", "Челябинск", "Самара", "Омск", "Ростов-на-Дону",
	"Уфа", "Красноярск", "Воронеж", "Пермь", "Волгоград", "Краснодар",
	"Саратов", "Тюмень", "Тольятти", "Ижевск", "Барнаул", "Ульяновск",
	"Иркутск", "Хабаровск", "Ярославль", "Владивосток", "Махачкала", "Томск",
	"Оренбург", "Кемерово", "Новокузнецк", "Рязань", "Астрахань", "Пенза",
	"Липецк", "Киров", "Чебоксары", "Тула", "Калининград", "Курск",
	"Сочи", "Ставрополь", "Улан-Удэ", "Тверь", "Магнитогорск", "Иваново",
	"Брянск", "Белгород", "Сургут", "Владимир", "Архангельск", "Смоленск",
	"Калуга", "Чита", "Вологда", "Мурманск", "Петрозаводск", "Кострома",
	"Псков", "Великий Новгород",
}

var ruStreetTypes = []string{
	"ул.", "ул.", "ул.", "пер.", "пр.", "наб.", "бул.", "ш.",
}

var ruStreetNames = []string{
	"Ленина", "Гагарина", "Мира", "Советская", "Садовая", "Лесная",
	"Центральная", "Школьная", "Молодёжная", "Пушкина", "Лермонтова",
	"Победы", "Октябрьская", "Новая", "Набережная", "Заводская", "Полевая",
	"Строителей", "Комсомольская", "Кирова", "Чехова", "Горького",
	"Первомайская", "Северная", "Южная", "Зелёная", "Солнечная", "Парковая",
	"Маяковского", "Толстого", "Королёва", "Космонавтов", "Спортивная",
	"Вокзальная", "Луговая", "Речная", "Суворова", "Жукова", "Чапаева",
	"Островского",
}

var ruJobs = []string{
	"Инженер-программист", "Тестировщик", "Аналитик", "Бухгалтер",
	"Главный бухгалтер", "Экономист", "Юрист", "Менеджер по продажам",
	"Менеджер проекта", "Системный администратор", "Дизайнер", "Врач-терапевт",
	"Медицинская сестра", "Учитель", "Воспитатель", "Инженер-конструктор",
	"Технолог", "Электрик", "Сварщик", "Водитель", "Повар", "Официант",
	"Продавец-консультант", "Кассир", "Логист", "Кладовщик", "Архитектор",
	"Маркетолог", "Переводчик", "Журналист", "Фармацевт", "Механик",
	"Оператор call-центра", "Специалист по кадрам", "Секретарь",
	"Администратор", "Прораб", "Геодезист", "Слесарь", "Агроном",
}

var ruCompanyForms = []string{
	"ООО", "ООО", "ООО", "АО", "ПАО", "НПО", "ГК", "ЗАО",
}

var ruCompanyNames = []string{
	"Вектор", "Альфа", "Прогресс", "Горизонт", "Север", "Восток", "Меридиан",
	"Гранит", "Импульс", "Капитал", "Лидер", "Монолит", "Орион", "Пульсар",
	"Радуга", "Сигма", "Спектр", "Стандарт", "Технопарк", "Транзит",
	"Феникс", "Энергия", "Юнона", "Атлант", "Берег", "Волна", "Гелиос",
	"Дельта", "Заря", "Инвест", "Кристалл", "Магистраль", "Новатор",
	"Омега", "Полюс", "Ресурс", "СтройМаш", "ТехноСервис", "Уралсеть",
	"Эталон",
}

var ruEmailDomains = []string{
	"example.ru", "example.com", "test.ru", "mail.example", "qa.example",
}

var ruPhonePatterns = []string{
	`\+7 \(9\d{2}\) \d{3}-\d{2}-\d{2}`,
	`8 \(9\d{2}\) \d{3}-\d{2}-\d{2}`,
	`\+7 9\d{2} \d{3} \d{2} \d{2}`,
	`\+7 \(4\d{2}\) \d{3}-\d{2}-\d{2}`,
	`8 \(8\d{2}\) \d{3}-\d{2}-\d{2}`,
}

// translit maps Cyrillic lowercase letters to Latin for email local parts.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}
