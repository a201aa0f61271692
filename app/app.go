package ckapp

import (
	appbase "github.com/rolandpakai/liferay-ckeditor/app/base"
	_ "github.com/rolandpakai/liferay-ckeditor/app/build"
	_ "github.com/rolandpakai/liferay-ckeditor/app/patch"
	_ "github.com/rolandpakai/liferay-ckeditor/app/setup"
	_ "github.com/rolandpakai/liferay-ckeditor/app/update"
)

var App = appbase.App
